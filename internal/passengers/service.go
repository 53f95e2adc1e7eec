package passengers

import (
	"context"
	"errors"
	"fmt"

	"flightdesk/internal/cabin"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrSeatOccupied      = errors.New("seat already occupied")
	ErrAlreadyCheckedIn  = errors.New("passenger already checked in")
)

type Service interface {
	CreatePassenger(ctx context.Context, req CreatePassengerRequest) (*Passenger, error)
	GetPassenger(ctx context.Context, id string) (*Passenger, error)
	ListByFlight(ctx context.Context, flightID string) ([]Passenger, error)
	UpdatePassenger(ctx context.Context, id string, req UpdatePassengerRequest) (*Passenger, error)
	CheckIn(ctx context.Context, id string, req CheckInRequest) (*Passenger, error)
	DeletePassenger(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	grid cabin.Grid
}

func NewService(repo Repository, grid cabin.Grid) Service {
	return &service{
		repo: repo,
		grid: grid,
	}
}

func (s *service) CreatePassenger(ctx context.Context, req CreatePassengerRequest) (*Passenger, error) {
	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	passenger := &Passenger{
		FlightID:   flightID,
		FullName:   req.FullName,
		BookingRef: req.BookingRef,
		Infant:     req.Infant,
	}

	if err := s.repo.CreatePassenger(ctx, passenger); err != nil {
		return nil, fmt.Errorf("failed to create passenger: %w", err)
	}

	return passenger, nil
}

func (s *service) GetPassenger(ctx context.Context, id string) (*Passenger, error) {
	passengerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID: %w", err)
	}

	passenger, err := s.repo.GetPassengerByID(ctx, passengerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPassengerNotFound
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	return passenger, nil
}

func (s *service) ListByFlight(ctx context.Context, flightID string) ([]Passenger, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	return s.repo.ListByFlight(ctx, id)
}

func (s *service) UpdatePassenger(ctx context.Context, id string, req UpdatePassengerRequest) (*Passenger, error) {
	passengerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID: %w", err)
	}

	passenger, err := s.repo.GetPassengerByID(ctx, passengerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPassengerNotFound
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Seat != nil {
		if *req.Seat != "" {
			if err := s.validateSeatFree(ctx, passenger, *req.Seat); err != nil {
				return nil, err
			}
		}
		updates["seat"] = *req.Seat
	}
	if req.CheckedIn != nil {
		updates["checked_in"] = *req.CheckedIn
	}
	if req.PremiumUpgrade != nil {
		updates["premium_upgrade"] = *req.PremiumUpgrade
	}
	if req.Preferences != nil {
		updates["seat_preferences"] = req.Preferences
	}

	if len(updates) > 0 {
		if err := s.repo.UpdatePassenger(ctx, passengerID, updates); err != nil {
			return nil, fmt.Errorf("failed to update passenger: %w", err)
		}
	}

	return s.repo.GetPassengerByID(ctx, passengerID)
}

func (s *service) CheckIn(ctx context.Context, id string, req CheckInRequest) (*Passenger, error) {
	passengerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID: %w", err)
	}

	passenger, err := s.repo.GetPassengerByID(ctx, passengerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPassengerNotFound
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	if passenger.CheckedIn {
		return nil, ErrAlreadyCheckedIn
	}

	if err := s.validateSeatFree(ctx, passenger, req.Seat); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"seat":       req.Seat,
		"checked_in": true,
	}
	if err := s.repo.UpdatePassenger(ctx, passengerID, updates); err != nil {
		return nil, fmt.Errorf("failed to check in passenger: %w", err)
	}

	return s.repo.GetPassengerByID(ctx, passengerID)
}

func (s *service) DeletePassenger(ctx context.Context, id string) error {
	passengerID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid passenger ID: %w", err)
	}

	if _, err := s.repo.GetPassengerByID(ctx, passengerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPassengerNotFound
		}
		return fmt.Errorf("failed to get passenger: %w", err)
	}

	return s.repo.DeletePassenger(ctx, passengerID)
}

// validateSeatFree checks the seat grammar and that no other passenger on the
// flight holds the seat. The passenger's own current seat never counts as a
// conflict, so re-confirming the same seat is allowed.
func (s *service) validateSeatFree(ctx context.Context, passenger *Passenger, seat string) error {
	if _, _, err := s.grid.ParseSeat(seat); err != nil {
		return fmt.Errorf("invalid seat: %w", err)
	}

	manifest, err := s.repo.ListByFlight(ctx, passenger.FlightID)
	if err != nil {
		return fmt.Errorf("failed to load flight manifest: %w", err)
	}

	for _, other := range manifest {
		if other.ID == passenger.ID || other.Infant {
			continue
		}
		if other.Seat == seat {
			return fmt.Errorf("%w: %s held by %s", ErrSeatOccupied, seat, other.ID)
		}
	}

	return nil
}

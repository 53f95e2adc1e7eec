package upgrades

import (
	"context"
	"errors"
	"fmt"

	"flightdesk/internal/allocation"
	"flightdesk/internal/cabin"
	"flightdesk/internal/passengers"
	"flightdesk/internal/seatevents"
	"flightdesk/internal/shared/constants"
	"flightdesk/pkg/cache"
	"flightdesk/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrSeatUnavailable   = errors.New("seat no longer available")
	ErrNotPremiumSeat    = errors.New("seat is not in a premium row")
)

// Store is the persistence seam for upgrade operations.
type Store interface {
	GetPassengerByID(ctx context.Context, id uuid.UUID) (*passengers.Passenger, error)
	ListByFlight(ctx context.Context, flightID uuid.UUID) ([]passengers.Passenger, error)
	UpdatePassenger(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
}

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetPublisher(publisher seatevents.Publisher)

	GetInventory(ctx context.Context, flightID string) ([]PremiumSeatUpsell, error)
	ApplyUpgrade(ctx context.Context, passengerID string, req ApplyUpgradeRequest) (*UpgradeResponse, error)
	SetPreferences(ctx context.Context, passengerID string, req SetPreferencesRequest) (*PreferenceResponse, error)

	PremiumPassengers(ctx context.Context, flightID string) ([]passengers.Passenger, error)
	ClearUpgrades(ctx context.Context, flightID string) (*ClearUpgradesResponse, error)
}

type service struct {
	store        Store
	grid         cabin.Grid
	pricing      Pricing
	maxOffers    int
	cacheService cache.Service
	publisher    seatevents.Publisher
}

func NewService(store Store, grid cabin.Grid, pricing Pricing, maxOffers int) Service {
	if maxOffers <= 0 {
		maxOffers = DefaultMaxOffers
	}
	return &service{
		store:     store,
		grid:      grid,
		pricing:   pricing,
		maxOffers: maxOffers,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetPublisher(publisher seatevents.Publisher) {
	s.publisher = publisher
}

func (s *service) GetInventory(ctx context.Context, flightID string) ([]PremiumSeatUpsell, error) {
	fid, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	fetch := func() (interface{}, error) {
		manifest, err := s.store.ListByFlight(ctx, fid)
		if err != nil {
			return nil, fmt.Errorf("failed to load flight manifest: %w", err)
		}
		return PremiumInventory(s.grid, s.pricing, manifest, s.maxOffers), nil
	}

	if s.cacheService == nil {
		offers, err := fetch()
		if err != nil {
			return nil, err
		}
		return offers.([]PremiumSeatUpsell), nil
	}

	var offers []PremiumSeatUpsell
	cacheKey := constants.BuildPremiumInventoryKey(flightID)
	if err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_PREMIUM_INVENTORY, fetch, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *service) ApplyUpgrade(ctx context.Context, passengerID string, req ApplyUpgradeRequest) (*UpgradeResponse, error) {
	pid, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID: %w", err)
	}

	passenger, err := s.store.GetPassengerByID(ctx, pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPassengerNotFound
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	row, _, err := s.grid.ParseSeat(req.Seat)
	if err != nil {
		return nil, fmt.Errorf("invalid seat: %w", err)
	}
	if !s.grid.IsPremiumRow(row) {
		return nil, fmt.Errorf("%w: %s", ErrNotPremiumSeat, req.Seat)
	}

	manifest, err := s.store.ListByFlight(ctx, passenger.FlightID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight manifest: %w", err)
	}
	occupied := allocation.OccupiedSeats(manifest, []uuid.UUID{pid})

	seat := req.Seat
	reseated := false

	// When the passenger holds a window/aisle preference, the upgrade can
	// re-seat them onto a matching premium seat instead of the chosen one.
	if req.AutoReseat && passenger.SeatPreferences != nil {
		if candidate, ok := FindPreferredPremiumSeat(s.grid, occupied, passenger.SeatPreferences); ok {
			reseated = candidate != req.Seat
			seat = candidate
		}
	}

	// Availability is re-checked at apply time; the inventory the staff
	// member saw may be stale.
	if _, taken := occupied[seat]; taken {
		return nil, fmt.Errorf("%w: %s", ErrSeatUnavailable, seat)
	}

	updates := map[string]interface{}{
		"seat":            seat,
		"premium_upgrade": true,
	}
	if err := s.store.UpdatePassenger(ctx, pid, updates); err != nil {
		return nil, fmt.Errorf("failed to apply upgrade: %w", err)
	}

	s.invalidateInventory(ctx, passenger.FlightID.String())
	s.publish(ctx, seatevents.SeatEvent{
		Type:         seatevents.EventUpgradeApplied,
		FlightID:     passenger.FlightID.String(),
		PassengerIDs: []string{passengerID},
		Seats:        []string{seat},
	})

	return &UpgradeResponse{
		PassengerID: passengerID,
		Seat:        seat,
		Reseated:    reseated,
	}, nil
}

func (s *service) SetPreferences(ctx context.Context, passengerID string, req SetPreferencesRequest) (*PreferenceResponse, error) {
	pid, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID: %w", err)
	}

	passenger, err := s.store.GetPassengerByID(ctx, pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPassengerNotFound
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	prefs := &passengers.SeatPreferences{
		Position:   req.Position,
		Type:       req.Type,
		NearFamily: req.NearFamily,
	}

	updates := map[string]interface{}{"seat_preferences": prefs}
	resp := &PreferenceResponse{
		PassengerID: passengerID,
		Preferences: *prefs,
		Seat:        passenger.Seat,
	}

	// Premium passengers get reconciled onto a matching premium seat when one
	// is free; everyone else just stores the preference.
	if passenger.PremiumUpgrade {
		manifest, err := s.store.ListByFlight(ctx, passenger.FlightID)
		if err != nil {
			return nil, fmt.Errorf("failed to load flight manifest: %w", err)
		}
		occupied := allocation.OccupiedSeats(manifest, []uuid.UUID{pid})

		if candidate, ok := FindPreferredPremiumSeat(s.grid, occupied, prefs); ok && candidate != passenger.Seat {
			updates["seat"] = candidate
			resp.Seat = candidate
			resp.Reseated = true
		}
	}

	if err := s.store.UpdatePassenger(ctx, pid, updates); err != nil {
		return nil, fmt.Errorf("failed to store preferences: %w", err)
	}

	if resp.Reseated {
		s.invalidateInventory(ctx, passenger.FlightID.String())
		s.publish(ctx, seatevents.SeatEvent{
			Type:         seatevents.EventSeatAssigned,
			FlightID:     passenger.FlightID.String(),
			PassengerIDs: []string{passengerID},
			Seats:        []string{resp.Seat},
		})
	}

	return resp, nil
}

func (s *service) PremiumPassengers(ctx context.Context, flightID string) ([]passengers.Passenger, error) {
	fid, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	manifest, err := s.store.ListByFlight(ctx, fid)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight manifest: %w", err)
	}

	var out []passengers.Passenger
	for i := range manifest {
		if manifest[i].PremiumUpgrade {
			out = append(out, manifest[i])
		}
	}
	return out, nil
}

func (s *service) ClearUpgrades(ctx context.Context, flightID string) (*ClearUpgradesResponse, error) {
	affected, err := s.PremiumPassengers(ctx, flightID)
	if err != nil {
		return nil, err
	}

	resp := &ClearUpgradesResponse{Total: len(affected)}
	ids := make([]string, 0, len(affected))
	for i := range affected {
		if err := s.store.UpdatePassenger(ctx, affected[i].ID, map[string]interface{}{"premium_upgrade": false}); err != nil {
			logger.GetDefault().Error("failed to clear premium upgrade",
				"passenger_id", affected[i].ID.String(),
				"error", err.Error(),
			)
			continue
		}
		resp.Cleared++
		ids = append(ids, affected[i].ID.String())
	}

	if resp.Cleared > 0 {
		s.invalidateInventory(ctx, flightID)
		s.publish(ctx, seatevents.SeatEvent{
			Type:         seatevents.EventUpgradeCleared,
			FlightID:     flightID,
			PassengerIDs: ids,
		})
	}

	return resp, nil
}

func (s *service) invalidateInventory(ctx context.Context, flightID string) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildPremiumInventoryKey(flightID)); err != nil {
		logger.GetDefault().Debug("failed to invalidate premium inventory cache", "error", err.Error())
	}
}

func (s *service) publish(ctx context.Context, event seatevents.SeatEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSeatEvent(ctx, event); err != nil {
		logger.GetDefault().Error("failed to publish seat event",
			"type", string(event.Type),
			"flight_id", event.FlightID,
			"error", err.Error(),
		)
	}
}

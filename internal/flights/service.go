package flights

import (
	"context"
	"errors"
	"fmt"

	"flightdesk/internal/shared/constants"
	"flightdesk/pkg/cache"
	"flightdesk/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFlightNotFound = errors.New("flight not found")

type Service interface {
	SetCacheService(cacheService cache.Service)

	GetFlight(ctx context.Context, id string) (*Flight, error)
	GetFlightByNumber(ctx context.Context, number string) (*Flight, error)
	ListFlights(ctx context.Context) ([]Flight, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Flight, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetFlight(ctx context.Context, id string) (*Flight, error) {
	flightID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	fetch := func() (interface{}, error) {
		flight, err := s.repo.GetFlightByID(ctx, flightID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFlightNotFound
			}
			return nil, fmt.Errorf("failed to get flight: %w", err)
		}
		return flight, nil
	}

	if s.cacheService == nil {
		flight, err := fetch()
		if err != nil {
			return nil, err
		}
		return flight.(*Flight), nil
	}

	var flight Flight
	key := constants.BuildFlightDetailKey(id)
	if err := s.cacheService.GetOrSet(ctx, key, constants.TTL_FLIGHT_DETAIL, fetch, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (s *service) GetFlightByNumber(ctx context.Context, number string) (*Flight, error) {
	flight, err := s.repo.GetFlightByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return flight, nil
}

func (s *service) ListFlights(ctx context.Context) ([]Flight, error) {
	fetch := func() (interface{}, error) {
		return s.repo.ListFlights(ctx)
	}

	if s.cacheService == nil {
		list, err := fetch()
		if err != nil {
			return nil, err
		}
		return list.([]Flight), nil
	}

	var list []Flight
	if err := s.cacheService.GetOrSet(ctx, constants.CACHE_KEY_FLIGHTS_LIST, constants.TTL_FLIGHT_LIST, fetch, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*Flight, error) {
	flightID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	validStatuses := map[string]bool{"SCHEDULED": true, "BOARDING": true, "DEPARTED": true, "CANCELLED": true}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid flight status: %s", status)
	}

	if err := s.repo.UpdateFlightStatus(ctx, flightID, status); err != nil {
		return nil, fmt.Errorf("failed to update flight status: %w", err)
	}

	s.invalidateFlightCaches(ctx)

	flight, err := s.repo.GetFlightByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return flight, nil
}

// invalidateFlightCaches drops the list and every detail entry. Status
// changes are rare enough that a pattern sweep beats tracking single keys.
func (s *service) invalidateFlightCaches(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_FLIGHTS_ALL); err != nil {
		logger.GetDefault().Debug("failed to invalidate flight caches", "error", err.Error())
	}
}

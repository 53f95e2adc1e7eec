package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"flightdesk/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeRepo struct {
	flights []Flight
}

func (f *fakeRepo) CreateFlight(ctx context.Context, flight *Flight) error {
	if flight.ID == uuid.Nil {
		flight.ID = uuid.New()
	}
	f.flights = append(f.flights, *flight)
	return nil
}

func (f *fakeRepo) GetFlightByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	for i := range f.flights {
		if f.flights[i].ID == id {
			fl := f.flights[i]
			return &fl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetFlightByNumber(ctx context.Context, number string) (*Flight, error) {
	for i := range f.flights {
		if f.flights[i].Number == number {
			fl := f.flights[i]
			return &fl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListFlights(ctx context.Context) ([]Flight, error) {
	out := make([]Flight, len(f.flights))
	copy(out, f.flights)
	return out, nil
}

func (f *fakeRepo) UpdateFlightStatus(ctx context.Context, id uuid.UUID, status string) error {
	for i := range f.flights {
		if f.flights[i].ID == id {
			f.flights[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeCache mirrors cache.Service in memory with a synchronous write-back.
type fakeCache struct {
	items map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.items[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.items[key] = data
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.items, key)
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range f.items {
		if strings.HasPrefix(key, prefix) {
			delete(f.items, key)
		}
	}
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) bool {
	_, ok := f.items[key]
	return ok
}

func (f *fakeCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := f.Get(ctx, key, dest); err == nil {
		return nil
	}
	data, err := fetcher()
	if err != nil {
		return fmt.Errorf("fetcher error: %w", err)
	}
	if err := f.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	return f.Get(ctx, key, dest)
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func newFlight(number string) Flight {
	return Flight{
		ID:            uuid.New(),
		Number:        number,
		Origin:        "AMS",
		Destination:   "LIS",
		DepartureTime: time.Now().Add(3 * time.Hour),
		Status:        "SCHEDULED",
	}
}

func TestListFlightsCached(t *testing.T) {
	repo := &fakeRepo{flights: []Flight{newFlight("FD201")}}
	svc := NewService(repo)
	svc.SetCacheService(newFakeCache())

	list, err := svc.ListFlights(context.Background())
	if err != nil {
		t.Fatalf("ListFlights returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 flight, got %d", len(list))
	}

	// A second read within the TTL is served from the cache.
	repo.flights = append(repo.flights, newFlight("FD305"))
	list, err = svc.ListFlights(context.Background())
	if err != nil {
		t.Fatalf("ListFlights returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected cached list of 1, got %d", len(list))
	}
}

func TestUpdateStatusInvalidatesFlightCaches(t *testing.T) {
	fl := newFlight("FD201")
	repo := &fakeRepo{flights: []Flight{fl}}
	svc := NewService(repo)
	svc.SetCacheService(newFakeCache())

	if _, err := svc.ListFlights(context.Background()); err != nil {
		t.Fatalf("ListFlights returned error: %v", err)
	}
	if _, err := svc.GetFlight(context.Background(), fl.ID.String()); err != nil {
		t.Fatalf("GetFlight returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), fl.ID.String(), "BOARDING")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != "BOARDING" {
		t.Fatalf("expected BOARDING, got %s", updated.Status)
	}

	got, err := svc.GetFlight(context.Background(), fl.ID.String())
	if err != nil {
		t.Fatalf("GetFlight returned error: %v", err)
	}
	if got.Status != "BOARDING" {
		t.Fatalf("stale flight detail after status update: %s", got.Status)
	}
}

func TestGetFlightNotFoundThroughCache(t *testing.T) {
	svc := NewService(&fakeRepo{})
	svc.SetCacheService(newFakeCache())

	_, err := svc.GetFlight(context.Background(), uuid.New().String())
	if !errors.Is(err, ErrFlightNotFound) {
		t.Fatalf("expected ErrFlightNotFound, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	fl := newFlight("FD201")
	svc := NewService(&fakeRepo{flights: []Flight{fl}})

	if _, err := svc.UpdateStatus(context.Background(), fl.ID.String(), "TAXIING"); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
}

package upgrades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"flightdesk/internal/cabin"
	"flightdesk/internal/passengers"
	"flightdesk/internal/shared/constants"
	"flightdesk/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeCache is an in-memory cache.Service; GetOrSet writes back
// synchronously so tests can assert on cache contents right away.
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

type fakeStore struct {
	manifest []passengers.Passenger
}

func (f *fakeStore) GetPassengerByID(ctx context.Context, id uuid.UUID) (*passengers.Passenger, error) {
	for i := range f.manifest {
		if f.manifest[i].ID == id {
			p := f.manifest[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) ListByFlight(ctx context.Context, flightID uuid.UUID) ([]passengers.Passenger, error) {
	out := make([]passengers.Passenger, len(f.manifest))
	copy(out, f.manifest)
	return out, nil
}

func (f *fakeStore) UpdatePassenger(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	for i := range f.manifest {
		if f.manifest[i].ID != id {
			continue
		}
		for field, value := range updates {
			switch field {
			case "seat":
				f.manifest[i].Seat = value.(string)
			case "premium_upgrade":
				f.manifest[i].PremiumUpgrade = value.(bool)
			case "seat_preferences":
				f.manifest[i].SeatPreferences = value.(*passengers.SeatPreferences)
			}
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) get(id uuid.UUID) passengers.Passenger {
	for _, p := range f.manifest {
		if p.ID == id {
			return p
		}
	}
	return passengers.Passenger{}
}

func TestApplyUpgrade(t *testing.T) {
	flightID := uuid.New()
	p := passengers.Passenger{ID: uuid.New(), FlightID: flightID, Seat: "7C"}
	store := &fakeStore{manifest: []passengers.Passenger{p}}

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)

	resp, err := svc.ApplyUpgrade(context.Background(), p.ID.String(), ApplyUpgradeRequest{Seat: "2B"})
	if err != nil {
		t.Fatalf("ApplyUpgrade returned error: %v", err)
	}
	if resp.Seat != "2B" || resp.Reseated {
		t.Fatalf("expected seat 2B without re-seat, got %+v", resp)
	}

	got := store.get(p.ID)
	if got.Seat != "2B" || !got.PremiumUpgrade {
		t.Fatalf("upgrade not persisted: seat=%q premium=%v", got.Seat, got.PremiumUpgrade)
	}
}

func TestApplyUpgradeRejectsNonPremiumSeat(t *testing.T) {
	flightID := uuid.New()
	p := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	store := &fakeStore{manifest: []passengers.Passenger{p}}

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)

	_, err := svc.ApplyUpgrade(context.Background(), p.ID.String(), ApplyUpgradeRequest{Seat: "7C"})
	if !errors.Is(err, ErrNotPremiumSeat) {
		t.Fatalf("expected ErrNotPremiumSeat, got %v", err)
	}
}

func TestApplyUpgradeRejectsOccupiedSeat(t *testing.T) {
	flightID := uuid.New()
	p := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	other := passengers.Passenger{ID: uuid.New(), FlightID: flightID, Seat: "1A"}
	store := &fakeStore{manifest: []passengers.Passenger{p, other}}

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)

	_, err := svc.ApplyUpgrade(context.Background(), p.ID.String(), ApplyUpgradeRequest{Seat: "1A"})
	if !errors.Is(err, ErrSeatUnavailable) {
		t.Fatalf("expected ErrSeatUnavailable, got %v", err)
	}
}

func TestApplyUpgradeAutoReseatsOntoPreference(t *testing.T) {
	flightID := uuid.New()
	p := passengers.Passenger{
		ID:              uuid.New(),
		FlightID:        flightID,
		SeatPreferences: &passengers.SeatPreferences{Position: []string{"window"}},
	}
	store := &fakeStore{manifest: []passengers.Passenger{p}}

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)

	resp, err := svc.ApplyUpgrade(context.Background(), p.ID.String(), ApplyUpgradeRequest{Seat: "2B", AutoReseat: true})
	if err != nil {
		t.Fatalf("ApplyUpgrade returned error: %v", err)
	}
	if resp.Seat != "1A" || !resp.Reseated {
		t.Fatalf("expected re-seat onto 1A, got %+v", resp)
	}
}

func TestSetPreferencesReconcilesPremiumPassenger(t *testing.T) {
	flightID := uuid.New()
	p := passengers.Passenger{ID: uuid.New(), FlightID: flightID, Seat: "2B", PremiumUpgrade: true}
	store := &fakeStore{manifest: []passengers.Passenger{p}}

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)

	resp, err := svc.SetPreferences(context.Background(), p.ID.String(), SetPreferencesRequest{
		Position: []string{"window"},
	})
	if err != nil {
		t.Fatalf("SetPreferences returned error: %v", err)
	}
	if !resp.Reseated || resp.Seat != "1A" {
		t.Fatalf("expected reconciliation onto 1A, got %+v", resp)
	}

	got := store.get(p.ID)
	if got.Seat != "1A" || got.SeatPreferences == nil {
		t.Fatalf("reconciliation not persisted: seat=%q", got.Seat)
	}
}

func TestSetPreferencesOnlyStoresForRegularPassenger(t *testing.T) {
	flightID := uuid.New()
	p := passengers.Passenger{ID: uuid.New(), FlightID: flightID, Seat: "7C"}
	store := &fakeStore{manifest: []passengers.Passenger{p}}

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)

	resp, err := svc.SetPreferences(context.Background(), p.ID.String(), SetPreferencesRequest{
		Position: []string{"window"},
	})
	if err != nil {
		t.Fatalf("SetPreferences returned error: %v", err)
	}
	if resp.Reseated || resp.Seat != "7C" {
		t.Fatalf("expected preferences stored without re-seat, got %+v", resp)
	}

	got := store.get(p.ID)
	if got.Seat != "7C" {
		t.Fatalf("regular passenger was moved to %s", got.Seat)
	}
	if got.SeatPreferences == nil || !got.SeatPreferences.HasPosition("window") {
		t.Fatal("preferences not persisted")
	}
}

func TestGetInventoryUsesCacheAside(t *testing.T) {
	flightID := uuid.New()
	store := &fakeStore{}
	fc := newFakeCache()

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)
	svc.SetCacheService(fc)

	offers, err := svc.GetInventory(context.Background(), flightID.String())
	if err != nil {
		t.Fatalf("GetInventory returned error: %v", err)
	}
	if len(offers) != DefaultMaxOffers || offers[0].SeatNumber != "1A" {
		t.Fatalf("unexpected inventory: %+v", offers)
	}
	if !fc.Exists(context.Background(), constants.BuildPremiumInventoryKey(flightID.String())) {
		t.Fatal("inventory was not written back to the cache")
	}

	// Within the TTL a newly occupied seat is still offered; the check-in
	// path relies on the apply-time availability check instead.
	store.manifest = append(store.manifest, passengers.Passenger{
		ID: uuid.New(), FlightID: flightID, Seat: "1A",
	})
	offers, err = svc.GetInventory(context.Background(), flightID.String())
	if err != nil {
		t.Fatalf("GetInventory returned error: %v", err)
	}
	if offers[0].SeatNumber != "1A" {
		t.Fatalf("expected cached inventory, got first offer %s", offers[0].SeatNumber)
	}
}

func TestApplyUpgradeInvalidatesInventoryCache(t *testing.T) {
	flightID := uuid.New()
	p := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	store := &fakeStore{manifest: []passengers.Passenger{p}}
	fc := newFakeCache()

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)
	svc.SetCacheService(fc)

	if _, err := svc.GetInventory(context.Background(), flightID.String()); err != nil {
		t.Fatalf("GetInventory returned error: %v", err)
	}

	if _, err := svc.ApplyUpgrade(context.Background(), p.ID.String(), ApplyUpgradeRequest{Seat: "1A"}); err != nil {
		t.Fatalf("ApplyUpgrade returned error: %v", err)
	}

	offers, err := svc.GetInventory(context.Background(), flightID.String())
	if err != nil {
		t.Fatalf("GetInventory returned error: %v", err)
	}
	if offers[0].SeatNumber != "1B" {
		t.Fatalf("expected fresh inventory starting at 1B after upgrade, got %s", offers[0].SeatNumber)
	}
}

func TestClearUpgrades(t *testing.T) {
	flightID := uuid.New()
	a := passengers.Passenger{ID: uuid.New(), FlightID: flightID, Seat: "1A", PremiumUpgrade: true}
	b := passengers.Passenger{ID: uuid.New(), FlightID: flightID, Seat: "2B", PremiumUpgrade: true}
	c := passengers.Passenger{ID: uuid.New(), FlightID: flightID, Seat: "7C"}
	store := &fakeStore{manifest: []passengers.Passenger{a, b, c}}

	svc := NewService(store, cabin.DefaultGrid(), DefaultPricing(), DefaultMaxOffers)

	resp, err := svc.ClearUpgrades(context.Background(), flightID.String())
	if err != nil {
		t.Fatalf("ClearUpgrades returned error: %v", err)
	}
	if resp.Cleared != 2 || resp.Total != 2 {
		t.Fatalf("expected 2/2 cleared, got %d/%d", resp.Cleared, resp.Total)
	}

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		got := store.get(id)
		if got.PremiumUpgrade {
			t.Fatalf("passenger %s still flagged", id)
		}
		if got.Seat == "" {
			t.Fatalf("clearing the flag must not unseat passenger %s", id)
		}
	}
}

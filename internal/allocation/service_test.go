package allocation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"flightdesk/internal/cabin"
	"flightdesk/internal/passengers"

	"github.com/google/uuid"
)

// fakeStore keeps the manifest in memory and applies the same partial-update
// maps the repository would. UpdatePassenger is called concurrently, so all
// access is mutex-guarded.
type fakeStore struct {
	mu       sync.Mutex
	manifest []passengers.Passenger
	failIDs  map[uuid.UUID]error
}

func newFakeStore(manifest []passengers.Passenger) *fakeStore {
	return &fakeStore{
		manifest: manifest,
		failIDs:  map[uuid.UUID]error{},
	}
}

func (f *fakeStore) ListByFlight(ctx context.Context, flightID uuid.UUID) ([]passengers.Passenger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]passengers.Passenger, len(f.manifest))
	copy(out, f.manifest)
	return out, nil
}

func (f *fakeStore) UpdatePassenger(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failIDs[id]; ok {
		return err
	}

	for i := range f.manifest {
		if f.manifest[i].ID != id {
			continue
		}
		for field, value := range updates {
			switch field {
			case "seat":
				if value == nil {
					f.manifest[i].Seat = ""
				} else {
					f.manifest[i].Seat = value.(string)
				}
			case "group_seating":
				if value == nil {
					f.manifest[i].GroupSeating = nil
				} else {
					f.manifest[i].GroupSeating = value.(*passengers.GroupSeating)
				}
			case "family_seating":
				if value == nil {
					f.manifest[i].FamilySeating = nil
				} else {
					f.manifest[i].FamilySeating = value.(*passengers.FamilySeating)
				}
			}
		}
		return nil
	}
	return errors.New("passenger not found")
}

func (f *fakeStore) get(id uuid.UUID) passengers.Passenger {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.manifest {
		if p.ID == id {
			return p
		}
	}
	return passengers.Passenger{}
}

func TestAllocateGroupPersistsTag(t *testing.T) {
	flightID := uuid.New()
	a := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	b := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	store := newFakeStore([]passengers.Passenger{a, b})

	svc := NewService(store, cabin.DefaultGrid())

	resp, err := svc.AllocateGroup(context.Background(), flightID.String(), GroupAllocationRequest{
		PassengerIDs: []string{a.ID.String(), b.ID.String()},
		KeepTogether: true,
	})
	if err != nil {
		t.Fatalf("AllocateGroup returned error: %v", err)
	}

	if resp.Group.LeadPassengerID != a.ID.String() {
		t.Fatalf("expected %s as lead, got %s", a.ID, resp.Group.LeadPassengerID)
	}

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		p := store.get(id)
		if p.GroupSeating == nil {
			t.Fatalf("passenger %s missing group tag", id)
		}
		if p.GroupSeating.GroupID != resp.Group.GroupID {
			t.Fatalf("passenger %s tagged with wrong group", id)
		}
		if p.Seat != "" {
			t.Fatalf("group allocation must not assign seats, passenger %s got %s", id, p.Seat)
		}
	}
}

func TestAllocateGroupRejectsCheckedIn(t *testing.T) {
	flightID := uuid.New()
	a := passengers.Passenger{ID: uuid.New(), FlightID: flightID, CheckedIn: true, Seat: "3A"}
	b := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	store := newFakeStore([]passengers.Passenger{a, b})

	svc := NewService(store, cabin.DefaultGrid())

	_, err := svc.AllocateGroup(context.Background(), flightID.String(), GroupAllocationRequest{
		PassengerIDs: []string{a.ID.String(), b.ID.String()},
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAllocateFamilyPersistsSeats(t *testing.T) {
	flightID := uuid.New()
	adult := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	child := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	infant := passengers.Passenger{ID: uuid.New(), FlightID: flightID, Infant: true}
	store := newFakeStore([]passengers.Passenger{adult, child, infant})

	svc := NewService(store, cabin.DefaultGrid())

	resp, err := svc.AllocateFamily(context.Background(), flightID.String(), FamilyAllocationRequest{
		Adults:       1,
		Children:     1,
		Infants:      1,
		PassengerIDs: []string{adult.ID.String(), child.ID.String(), infant.ID.String()},
	})
	if err != nil {
		t.Fatalf("AllocateFamily returned error: %v", err)
	}

	if len(resp.Seats) != 3 {
		t.Fatalf("expected 3 seats in response, got %d", len(resp.Seats))
	}
	if resp.Seats[0] != "1A" || resp.Seats[1] != "1B" {
		t.Fatalf("expected 1A,1B for adult and child, got %v", resp.Seats)
	}
	if resp.Seats[2] != "1A" {
		t.Fatalf("expected infant to share the adult's seat, got %s", resp.Seats[2])
	}

	if got := store.get(adult.ID); got.Seat != "1A" || got.FamilySeating == nil {
		t.Fatalf("adult not persisted correctly: seat=%q", got.Seat)
	}
	if got := store.get(child.ID); got.Seat != "1B" {
		t.Fatalf("child not persisted correctly: seat=%q", got.Seat)
	}
	if got := store.get(infant.ID); got.Seat != "1A" {
		t.Fatalf("infant not persisted correctly: seat=%q", got.Seat)
	}
}

func TestAllocateFamilyRollsBackOnPartialFailure(t *testing.T) {
	flightID := uuid.New()
	adult := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	child := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	store := newFakeStore([]passengers.Passenger{adult, child})
	store.failIDs[child.ID] = errors.New("connection reset")

	svc := NewService(store, cabin.DefaultGrid())

	_, err := svc.AllocateFamily(context.Background(), flightID.String(), FamilyAllocationRequest{
		Adults:       2,
		PassengerIDs: []string{adult.ID.String(), child.ID.String()},
	})

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if perr.Succeeded != 1 || perr.Total != 2 {
		t.Fatalf("expected 1/2 succeeded, got %d/%d", perr.Succeeded, perr.Total)
	}
	if !perr.RolledBack {
		t.Fatal("expected successful members to be rolled back")
	}

	// The member that updated must have been reverted.
	if got := store.get(adult.ID); got.Seat != "" || got.FamilySeating != nil {
		t.Fatalf("expected adult reverted, got seat=%q", got.Seat)
	}
}

func TestClearGroupSeating(t *testing.T) {
	flightID := uuid.New()
	group := &passengers.GroupSeating{GroupID: uuid.New().String(), Size: 2}
	a := passengers.Passenger{ID: uuid.New(), FlightID: flightID, GroupSeating: group}
	b := passengers.Passenger{ID: uuid.New(), FlightID: flightID, GroupSeating: group}
	c := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	store := newFakeStore([]passengers.Passenger{a, b, c})

	svc := NewService(store, cabin.DefaultGrid())

	resp, err := svc.ClearGroupSeating(context.Background(), flightID.String())
	if err != nil {
		t.Fatalf("ClearGroupSeating returned error: %v", err)
	}
	if resp.Cleared != 2 {
		t.Fatalf("expected 2 cleared, got %d", resp.Cleared)
	}

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		if got := store.get(id); got.GroupSeating != nil {
			t.Fatalf("passenger %s still tagged", id)
		}
	}
}

func TestGroupedPassengersFilters(t *testing.T) {
	flightID := uuid.New()
	tagged := passengers.Passenger{ID: uuid.New(), FlightID: flightID, GroupSeating: &passengers.GroupSeating{GroupID: "g"}}
	plain := passengers.Passenger{ID: uuid.New(), FlightID: flightID}
	store := newFakeStore([]passengers.Passenger{tagged, plain})

	svc := NewService(store, cabin.DefaultGrid())

	got, err := svc.GroupedPassengers(context.Background(), flightID.String())
	if err != nil {
		t.Fatalf("GroupedPassengers returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != tagged.ID {
		t.Fatalf("expected only the tagged passenger, got %d entries", len(got))
	}
}

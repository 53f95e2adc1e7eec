package allocation

import (
	"errors"
	"testing"

	"flightdesk/internal/cabin"
	"flightdesk/internal/passengers"

	"github.com/google/uuid"
)

func TestPlanFamilySingleRowSpan(t *testing.T) {
	grid := cabin.DefaultGrid()

	mother := passengers.Passenger{ID: uuid.New(), FullName: "Marta"}
	father := passengers.Passenger{ID: uuid.New(), FullName: "Rui"}
	child := passengers.Passenger{ID: uuid.New(), FullName: "Ines"}
	manifest := []passengers.Passenger{mother, father, child}

	plan, err := PlanFamily(grid, manifest, FamilyRequest{
		Adults:      2,
		Children:    1,
		SelectedIDs: []uuid.UUID{mother.ID, father.ID, child.ID},
	})
	if err != nil {
		t.Fatalf("PlanFamily returned error: %v", err)
	}

	want := []string{"1A", "1B", "1C"}
	if len(plan.Seats) != len(want) {
		t.Fatalf("expected %d seats, got %d", len(want), len(plan.Seats))
	}
	for i, seat := range want {
		if plan.Seats[i] != seat {
			t.Fatalf("seat %d: expected %s, got %s", i, seat, plan.Seats[i])
		}
	}
}

func TestPlanFamilySkipsOccupiedRows(t *testing.T) {
	grid := cabin.DefaultGrid()

	occupant := passengers.Passenger{ID: uuid.New(), Seat: "1B", CheckedIn: true}
	adult := passengers.Passenger{ID: uuid.New()}
	child := passengers.Passenger{ID: uuid.New()}
	manifest := []passengers.Passenger{occupant, adult, child}

	plan, err := PlanFamily(grid, manifest, FamilyRequest{
		Adults:      1,
		Children:    1,
		SelectedIDs: []uuid.UUID{adult.ID, child.ID},
	})
	if err != nil {
		t.Fatalf("PlanFamily returned error: %v", err)
	}

	// 1A alone is not a wide enough gap; the span lands right of the occupant.
	if plan.Seats[0] != "1C" || plan.Seats[1] != "1D" {
		t.Fatalf("expected 1C,1D, got %v", plan.Seats)
	}
}

func TestPlanFamilyTwoRowFallback(t *testing.T) {
	grid := cabin.Grid{Rows: 2, Letters: []string{"A", "B", "C", "D", "E", "F"}, PremiumRows: 1}

	// Alternating occupancy leaves no contiguous pair in either row.
	manifest := []passengers.Passenger{
		{ID: uuid.New(), Seat: "1A"},
		{ID: uuid.New(), Seat: "1C"},
		{ID: uuid.New(), Seat: "1E"},
		{ID: uuid.New(), Seat: "2B"},
		{ID: uuid.New(), Seat: "2D"},
		{ID: uuid.New(), Seat: "2F"},
	}

	adult1 := passengers.Passenger{ID: uuid.New()}
	adult2 := passengers.Passenger{ID: uuid.New()}
	child := passengers.Passenger{ID: uuid.New()}
	manifest = append(manifest, adult1, adult2, child)

	plan, err := PlanFamily(grid, manifest, FamilyRequest{
		Adults:      2,
		Children:    1,
		SelectedIDs: []uuid.UUID{adult1.ID, adult2.ID, child.ID},
	})
	if err != nil {
		t.Fatalf("PlanFamily returned error: %v", err)
	}

	want := []string{"1B", "1D", "1F"}
	for i, seat := range want {
		if plan.Seats[i] != seat {
			t.Fatalf("seat %d: expected %s, got %v", i, seat, plan.Seats)
		}
	}
}

func TestPlanFamilyInfantSharesAdultSeat(t *testing.T) {
	grid := cabin.DefaultGrid()

	adult1 := passengers.Passenger{ID: uuid.New()}
	adult2 := passengers.Passenger{ID: uuid.New()}
	infant := passengers.Passenger{ID: uuid.New(), Infant: true}
	manifest := []passengers.Passenger{adult1, adult2, infant}

	// Selection order deliberately differs from manifest order; the response
	// must follow the selection.
	plan, err := PlanFamily(grid, manifest, FamilyRequest{
		Adults:      2,
		Infants:     1,
		SelectedIDs: []uuid.UUID{infant.ID, adult2.ID, adult1.ID},
	})
	if err != nil {
		t.Fatalf("PlanFamily returned error: %v", err)
	}

	// Two seats for two adults; the infant rides on the first adult's lap.
	if plan.Seats[0] != "1A" {
		t.Fatalf("expected infant to share 1A, got %s", plan.Seats[0])
	}
	if plan.Seats[1] != "1B" {
		t.Fatalf("expected second adult in 1B, got %s", plan.Seats[1])
	}
	if plan.Seats[2] != "1A" {
		t.Fatalf("expected first adult in 1A, got %s", plan.Seats[2])
	}
}

func TestPlanFamilySpreadsInfantsAcrossAdults(t *testing.T) {
	grid := cabin.DefaultGrid()

	adult1 := passengers.Passenger{ID: uuid.New()}
	adult2 := passengers.Passenger{ID: uuid.New()}
	infant1 := passengers.Passenger{ID: uuid.New(), Infant: true}
	infant2 := passengers.Passenger{ID: uuid.New(), Infant: true}
	manifest := []passengers.Passenger{adult1, adult2, infant1, infant2}

	plan, err := PlanFamily(grid, manifest, FamilyRequest{
		Adults:      2,
		Infants:     2,
		SelectedIDs: []uuid.UUID{adult1.ID, adult2.ID, infant1.ID, infant2.ID},
	})
	if err != nil {
		t.Fatalf("PlanFamily returned error: %v", err)
	}

	if plan.Seats[2] != plan.Seats[0] {
		t.Fatalf("expected first infant with first adult, got %s vs %s", plan.Seats[2], plan.Seats[0])
	}
	if plan.Seats[3] != plan.Seats[1] {
		t.Fatalf("expected second infant with second adult, got %s vs %s", plan.Seats[3], plan.Seats[1])
	}
}

func TestPlanFamilyValidation(t *testing.T) {
	grid := cabin.DefaultGrid()
	adult := passengers.Passenger{ID: uuid.New()}
	infant := passengers.Passenger{ID: uuid.New(), Infant: true}
	manifest := []passengers.Passenger{adult, infant}

	cases := []struct {
		name string
		req  FamilyRequest
	}{
		{"no adults", FamilyRequest{Adults: 0, Infants: 1, SelectedIDs: []uuid.UUID{infant.ID}}},
		{"more infants than adults", FamilyRequest{Adults: 1, Infants: 2, SelectedIDs: []uuid.UUID{adult.ID, infant.ID, uuid.New()}}},
		{"selection count mismatch", FamilyRequest{Adults: 2, SelectedIDs: []uuid.UUID{adult.ID}}},
		{"passenger not on flight", FamilyRequest{Adults: 1, SelectedIDs: []uuid.UUID{uuid.New()}}},
		{"duplicate selection", FamilyRequest{Adults: 2, SelectedIDs: []uuid.UUID{adult.ID, adult.ID}}},
		{"composition does not match flags", FamilyRequest{Adults: 2, SelectedIDs: []uuid.UUID{adult.ID, infant.ID}}},
	}

	for _, tc := range cases {
		_, err := PlanFamily(grid, manifest, tc.req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestPlanFamilyExhaustedCabin(t *testing.T) {
	grid := cabin.Grid{Rows: 1, Letters: []string{"A", "B"}, PremiumRows: 1}

	manifest := []passengers.Passenger{
		{ID: uuid.New(), Seat: "1A"},
		{ID: uuid.New(), Seat: "1B"},
	}
	adult := passengers.Passenger{ID: uuid.New()}
	child := passengers.Passenger{ID: uuid.New()}
	manifest = append(manifest, adult, child)

	_, err := PlanFamily(grid, manifest, FamilyRequest{
		Adults:      1,
		Children:    1,
		SelectedIDs: []uuid.UUID{adult.ID, child.ID},
	})

	var aerr *AllocationError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AllocationError, got %v", err)
	}
}

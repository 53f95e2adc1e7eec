package allocation

import (
	"flightdesk/internal/cabin"
	"flightdesk/internal/passengers"

	"github.com/google/uuid"
)

// FamilyRequest describes a family allocation: how the selection is composed
// and which passengers it covers. SelectedIDs must resolve to exactly
// adults+children+infants passengers whose infant flags match the counts.
type FamilyRequest struct {
	Adults      int
	Children    int
	Infants     int
	SelectedIDs []uuid.UUID
}

// FamilyPlan is the computed seat plan. Seats is parallel to MemberIDs, which
// preserves the caller's selection order; infants carry the seat of the adult
// they sit with.
type FamilyPlan struct {
	Family    passengers.FamilySeating
	MemberIDs []uuid.UUID
	Seats     []string
}

// PlanFamily computes a family seat plan against a manifest snapshot. Lap
// infants need no seat of their own, so the search looks for adults+children
// consecutive free seats: first a contiguous span inside a single row, then a
// fallback across two neighboring rows when no row has a wide enough gap.
// Nothing is persisted here; the caller applies the returned plan.
func PlanFamily(grid cabin.Grid, manifest []passengers.Passenger, req FamilyRequest) (*FamilyPlan, error) {
	if req.Adults < 1 {
		return nil, validationErrorf("family seating requires at least 1 adult")
	}
	if req.Children < 0 || req.Infants < 0 {
		return nil, validationErrorf("family composition counts cannot be negative")
	}
	if req.Infants > req.Adults {
		return nil, validationErrorf("%d infants exceed %d adults: each lap infant needs an adult", req.Infants, req.Adults)
	}

	total := req.Adults + req.Children + req.Infants
	if len(req.SelectedIDs) != total {
		return nil, validationErrorf("selected %d passengers but composition declares %d", len(req.SelectedIDs), total)
	}

	selected, err := resolveSelection(manifest, req.SelectedIDs)
	if err != nil {
		return nil, err
	}

	var infantCount, nonInfantCount int
	for _, p := range selected {
		if p.Infant {
			infantCount++
		} else {
			nonInfantCount++
		}
	}
	if infantCount != req.Infants {
		return nil, validationErrorf("selection has %d infant passengers but composition declares %d infants", infantCount, req.Infants)
	}
	if nonInfantCount != req.Adults+req.Children {
		return nil, validationErrorf("selection has %d non-infant passengers but composition declares %d adults+children", nonInfantCount, req.Adults+req.Children)
	}

	seatsNeeded := req.Adults + req.Children
	occupied := OccupiedSeats(manifest, req.SelectedIDs)

	seats, ok := findConsecutiveSeats(grid, occupied, seatsNeeded)
	if !ok {
		return nil, &AllocationError{Reason: "insufficient consecutive seats for the family"}
	}

	// Non-infant members take seats in manifest order; the first Adults of
	// them are the adults infants share with. Infant i goes to adult
	// min(i, adults-1) so lap infants spread across adults when possible.
	assigned := make(map[uuid.UUID]string, total)
	var nonInfantIdx, infantIdx int
	for _, p := range manifest {
		sel, isSelected := selected[p.ID]
		if !isSelected {
			continue
		}
		if sel.Infant {
			adultIdx := infantIdx
			if adultIdx > req.Adults-1 {
				adultIdx = req.Adults - 1
			}
			assigned[p.ID] = seats[adultIdx]
			infantIdx++
		} else {
			assigned[p.ID] = seats[nonInfantIdx]
			nonInfantIdx++
		}
	}

	plan := &FamilyPlan{
		Family: passengers.FamilySeating{
			FamilyID:     uuid.New().String(),
			Adults:       req.Adults,
			Children:     req.Children,
			Infants:      req.Infants,
			AutoAllocate: true,
		},
		MemberIDs: req.SelectedIDs,
		Seats:     make([]string, 0, total),
	}
	for _, id := range req.SelectedIDs {
		plan.Seats = append(plan.Seats, assigned[id])
	}

	return plan, nil
}

// resolveSelection maps selected ids onto manifest passengers, rejecting ids
// that are not on the flight.
func resolveSelection(manifest []passengers.Passenger, selectedIDs []uuid.UUID) (map[uuid.UUID]*passengers.Passenger, error) {
	byID := make(map[uuid.UUID]*passengers.Passenger, len(manifest))
	for i := range manifest {
		byID[manifest[i].ID] = &manifest[i]
	}

	selected := make(map[uuid.UUID]*passengers.Passenger, len(selectedIDs))
	for _, id := range selectedIDs {
		p, ok := byID[id]
		if !ok {
			return nil, validationErrorf("selected passenger %s is not on this flight", id)
		}
		if _, dup := selected[id]; dup {
			return nil, validationErrorf("passenger %s selected more than once", id)
		}
		selected[id] = p
	}

	return selected, nil
}

// findConsecutiveSeats scans row-major for a contiguous free span inside one
// row, then falls back to pairs of neighboring rows where the combined free
// count suffices. The scan order is a deterministic tie-break, not a window
// or aisle preference.
func findConsecutiveSeats(grid cabin.Grid, occupied map[string]struct{}, need int) ([]string, bool) {
	if need <= 0 {
		return nil, false
	}

	free := func(row, letterIdx int) bool {
		_, taken := occupied[grid.SeatID(row, letterIdx)]
		return !taken
	}

	// Primary: a single-row contiguous span.
	for row := 1; row <= grid.Rows; row++ {
		for start := 0; start+need <= len(grid.Letters); start++ {
			ok := true
			for i := 0; i < need; i++ {
				if !free(row, start+i) {
					ok = false
					break
				}
			}
			if ok {
				seats := make([]string, need)
				for i := 0; i < need; i++ {
					seats[i] = grid.SeatID(row, start+i)
				}
				return seats, true
			}
		}
	}

	// Fallback: two neighboring rows with enough free seats between them,
	// earlier row first. This is a count heuristic, not a column-adjacency
	// search.
	for row := 1; row < grid.Rows; row++ {
		var seats []string
		for _, r := range []int{row, row + 1} {
			for idx := range grid.Letters {
				if free(r, idx) {
					seats = append(seats, grid.SeatID(r, idx))
				}
			}
		}
		if len(seats) >= need {
			return seats[:need], true
		}
	}

	return nil, false
}

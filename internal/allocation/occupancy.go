package allocation

import (
	"flightdesk/internal/passengers"

	"github.com/google/uuid"
)

// OccupiedSeats builds the set of seat identifiers currently held on the
// flight, skipping the excluded passengers. Exclusion is how the allocators
// do what-if checks: a passenger's own seat must never block their own
// re-allocation. The result is a fresh set each call; the input is not
// modified.
func OccupiedSeats(manifest []passengers.Passenger, excludeIDs []uuid.UUID) map[string]struct{} {
	excluded := make(map[uuid.UUID]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	occupied := make(map[string]struct{})
	for _, p := range manifest {
		if p.Seat == "" {
			continue
		}
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		occupied[p.Seat] = struct{}{}
	}

	return occupied
}

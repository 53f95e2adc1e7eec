package allocation

import (
	"context"
	"fmt"
	"sync"

	"flightdesk/internal/cabin"
	"flightdesk/internal/passengers"
	"flightdesk/internal/seatevents"
	"flightdesk/pkg/logger"

	"github.com/google/uuid"
)

// Store is the persistence seam the allocators use: a manifest snapshot to
// plan against and a per-passenger partial update to apply plans with. The
// passengers repository satisfies it.
type Store interface {
	ListByFlight(ctx context.Context, flightID uuid.UUID) ([]passengers.Passenger, error)
	UpdatePassenger(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
}

type Service interface {
	SetPublisher(publisher seatevents.Publisher)

	AllocateGroup(ctx context.Context, flightID string, req GroupAllocationRequest) (*GroupAllocationResponse, error)
	AllocateFamily(ctx context.Context, flightID string, req FamilyAllocationRequest) (*FamilyAllocationResponse, error)

	// Bulk clearing. The affected-set queries back the caller's confirmation
	// step; the clear operations do the actual removal.
	GroupedPassengers(ctx context.Context, flightID string) ([]passengers.Passenger, error)
	FamilyPassengers(ctx context.Context, flightID string) ([]passengers.Passenger, error)
	ClearGroupSeating(ctx context.Context, flightID string) (*ClearResponse, error)
	ClearFamilySeating(ctx context.Context, flightID string) (*ClearResponse, error)
}

type service struct {
	store     Store
	grid      cabin.Grid
	publisher seatevents.Publisher
}

func NewService(store Store, grid cabin.Grid) Service {
	return &service{
		store: store,
		grid:  grid,
	}
}

// SetPublisher wires the optional Kafka seat-event publisher.
func (s *service) SetPublisher(publisher seatevents.Publisher) {
	s.publisher = publisher
}

func (s *service) AllocateGroup(ctx context.Context, flightID string, req GroupAllocationRequest) (*GroupAllocationResponse, error) {
	fid, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	selectedIDs, err := parseIDs(req.PassengerIDs)
	if err != nil {
		return nil, err
	}

	manifest, err := s.store.ListByFlight(ctx, fid)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight manifest: %w", err)
	}

	if err := checkEligibility(manifest, selectedIDs, func(p *passengers.Passenger) error {
		if p.CheckedIn {
			return validationErrorf("passenger %s is already checked in", p.ID)
		}
		if p.GroupSeating != nil {
			return validationErrorf("passenger %s already has group seating", p.ID)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	group, err := PlanGroup(GroupRequest{SelectedIDs: selectedIDs, KeepTogether: req.KeepTogether})
	if err != nil {
		return nil, err
	}

	members := make([]memberUpdate, 0, len(selectedIDs))
	byID := indexManifest(manifest)
	for _, id := range selectedIDs {
		members = append(members, memberUpdate{
			id:      id,
			updates: map[string]interface{}{"group_seating": group},
			prior:   map[string]interface{}{"group_seating": byID[id].GroupSeating},
		})
	}

	if err := s.applyAll(ctx, members); err != nil {
		return nil, err
	}

	s.publish(ctx, seatevents.SeatEvent{
		Type:         seatevents.EventGroupAllocated,
		FlightID:     flightID,
		PassengerIDs: req.PassengerIDs,
		GroupID:      group.GroupID,
	})

	return &GroupAllocationResponse{
		Group:        *group,
		PassengerIDs: req.PassengerIDs,
	}, nil
}

func (s *service) AllocateFamily(ctx context.Context, flightID string, req FamilyAllocationRequest) (*FamilyAllocationResponse, error) {
	fid, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID: %w", err)
	}

	selectedIDs, err := parseIDs(req.PassengerIDs)
	if err != nil {
		return nil, err
	}

	manifest, err := s.store.ListByFlight(ctx, fid)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight manifest: %w", err)
	}

	if err := checkEligibility(manifest, selectedIDs, func(p *passengers.Passenger) error {
		if p.CheckedIn {
			return validationErrorf("passenger %s is already checked in", p.ID)
		}
		if p.FamilySeating != nil {
			return validationErrorf("passenger %s already has family seating", p.ID)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	plan, err := PlanFamily(s.grid, manifest, FamilyRequest{
		Adults:      req.Adults,
		Children:    req.Children,
		Infants:     req.Infants,
		SelectedIDs: selectedIDs,
	})
	if err != nil {
		return nil, err
	}

	byID := indexManifest(manifest)
	members := make([]memberUpdate, 0, len(plan.MemberIDs))
	for i, id := range plan.MemberIDs {
		prev := byID[id]
		members = append(members, memberUpdate{
			id: id,
			updates: map[string]interface{}{
				"seat":           plan.Seats[i],
				"family_seating": &plan.Family,
			},
			prior: map[string]interface{}{
				"seat":           prev.Seat,
				"family_seating": prev.FamilySeating,
			},
		})
	}

	if err := s.applyAll(ctx, members); err != nil {
		return nil, err
	}

	s.publish(ctx, seatevents.SeatEvent{
		Type:         seatevents.EventFamilyAllocated,
		FlightID:     flightID,
		PassengerIDs: req.PassengerIDs,
		FamilyID:     plan.Family.FamilyID,
		Seats:        plan.Seats,
	})

	return &FamilyAllocationResponse{
		Family:       plan.Family,
		PassengerIDs: req.PassengerIDs,
		Seats:        plan.Seats,
	}, nil
}

func (s *service) GroupedPassengers(ctx context.Context, flightID string) ([]passengers.Passenger, error) {
	return s.filterManifest(ctx, flightID, func(p *passengers.Passenger) bool {
		return p.GroupSeating != nil
	})
}

func (s *service) FamilyPassengers(ctx context.Context, flightID string) ([]passengers.Passenger, error) {
	return s.filterManifest(ctx, flightID, func(p *passengers.Passenger) bool {
		return p.FamilySeating != nil
	})
}

func (s *service) ClearGroupSeating(ctx context.Context, flightID string) (*ClearResponse, error) {
	affected, err := s.GroupedPassengers(ctx, flightID)
	if err != nil {
		return nil, err
	}

	members := make([]memberUpdate, 0, len(affected))
	ids := make([]string, 0, len(affected))
	for i := range affected {
		p := &affected[i]
		members = append(members, memberUpdate{
			id:      p.ID,
			updates: map[string]interface{}{"group_seating": nil},
			prior:   map[string]interface{}{"group_seating": p.GroupSeating},
		})
		ids = append(ids, p.ID.String())
	}

	if err := s.applyAll(ctx, members); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		s.publish(ctx, seatevents.SeatEvent{
			Type:         seatevents.EventGroupCleared,
			FlightID:     flightID,
			PassengerIDs: ids,
		})
	}

	return &ClearResponse{Cleared: len(members)}, nil
}

func (s *service) ClearFamilySeating(ctx context.Context, flightID string) (*ClearResponse, error) {
	affected, err := s.FamilyPassengers(ctx, flightID)
	if err != nil {
		return nil, err
	}

	members := make([]memberUpdate, 0, len(affected))
	ids := make([]string, 0, len(affected))
	for i := range affected {
		p := &affected[i]
		members = append(members, memberUpdate{
			id:      p.ID,
			updates: map[string]interface{}{"family_seating": nil},
			prior:   map[string]interface{}{"family_seating": p.FamilySeating},
		})
		ids = append(ids, p.ID.String())
	}

	if err := s.applyAll(ctx, members); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		s.publish(ctx, seatevents.SeatEvent{
			Type:         seatevents.EventFamilyCleared,
			FlightID:     flightID,
			PassengerIDs: ids,
		})
	}

	return &ClearResponse{Cleared: len(members)}, nil
}

// memberUpdate pairs a passenger update with the prior field values needed to
// revert it.
type memberUpdate struct {
	id      uuid.UUID
	updates map[string]interface{}
	prior   map[string]interface{}
}

// applyAll fires the member updates concurrently and waits for all of them.
// The batch succeeds only if every update succeeded; on any failure the
// members that did update are reverted before the error is reported, so a
// half-applied plan never lingers in the store.
func (s *service) applyAll(ctx context.Context, members []memberUpdate) error {
	if len(members) == 0 {
		return nil
	}

	errs := make([]error, len(members))
	var wg sync.WaitGroup
	for i := range members {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.store.UpdatePassenger(ctx, members[i].id, members[i].updates)
		}(i)
	}
	wg.Wait()

	perr := &PersistenceError{Total: len(members), RolledBack: true}
	for _, err := range errs {
		if err != nil {
			perr.Causes = append(perr.Causes, err)
		} else {
			perr.Succeeded++
		}
	}
	if len(perr.Causes) == 0 {
		return nil
	}

	// Compensating pass: revert the members that made it.
	for i := range members {
		if errs[i] != nil {
			continue
		}
		if err := s.store.UpdatePassenger(ctx, members[i].id, members[i].prior); err != nil {
			perr.RolledBack = false
			logger.GetDefault().Error("rollback of passenger update failed",
				"passenger_id", members[i].id.String(),
				"error", err.Error(),
			)
		}
	}

	return perr
}

func (s *service) filterManifest(ctx context.Context, flightID string, keep func(*passengers.Passenger) bool) ([]passengers.Passenger, error) {
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
		if keep(&manifest[i]) {
			out = append(out, manifest[i])
		}
	}
	return out, nil
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

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, validationErrorf("invalid passenger ID %q", r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func indexManifest(manifest []passengers.Passenger) map[uuid.UUID]*passengers.Passenger {
	byID := make(map[uuid.UUID]*passengers.Passenger, len(manifest))
	for i := range manifest {
		byID[manifest[i].ID] = &manifest[i]
	}
	return byID
}

func checkEligibility(manifest []passengers.Passenger, selectedIDs []uuid.UUID, check func(*passengers.Passenger) error) error {
	byID := indexManifest(manifest)
	for _, id := range selectedIDs {
		p, ok := byID[id]
		if !ok {
			return validationErrorf("selected passenger %s is not on this flight", id)
		}
		if err := check(p); err != nil {
			return err
		}
	}
	return nil
}

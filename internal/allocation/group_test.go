package allocation

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestPlanGroup(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	group, err := PlanGroup(GroupRequest{
		SelectedIDs:  []uuid.UUID{first, second, third},
		KeepTogether: true,
	})
	if err != nil {
		t.Fatalf("PlanGroup returned error: %v", err)
	}

	if group.Size != 3 {
		t.Fatalf("expected size 3, got %d", group.Size)
	}
	if group.LeadPassengerID != first.String() {
		t.Fatalf("expected first selected passenger to lead, got %s", group.LeadPassengerID)
	}
	if !group.KeepTogether {
		t.Fatal("expected keep_together to be recorded")
	}
	if _, err := uuid.Parse(group.GroupID); err != nil {
		t.Fatalf("group ID %q is not a UUID: %v", group.GroupID, err)
	}
}

func TestPlanGroupRejectsSingleton(t *testing.T) {
	_, err := PlanGroup(GroupRequest{SelectedIDs: []uuid.UUID{uuid.New()}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPlanGroupMintsDistinctIDs(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	first, err := PlanGroup(GroupRequest{SelectedIDs: ids})
	if err != nil {
		t.Fatalf("PlanGroup returned error: %v", err)
	}
	second, err := PlanGroup(GroupRequest{SelectedIDs: ids})
	if err != nil {
		t.Fatalf("PlanGroup returned error: %v", err)
	}

	if first.GroupID == second.GroupID {
		t.Fatal("expected each allocation to mint a fresh group ID")
	}
}

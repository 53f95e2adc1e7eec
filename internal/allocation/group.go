package allocation

import (
	"flightdesk/internal/passengers"

	"github.com/google/uuid"
)

// GroupRequest selects passengers to be tagged as a travel group. Order
// matters: the first selected passenger becomes the group lead.
type GroupRequest struct {
	SelectedIDs  []uuid.UUID
	KeepTogether bool
}

// PlanGroup validates the selection and mints the group record shared by all
// members. Group seating is metadata only: seats are not reassigned, the tag
// records that these passengers travel together and who leads them.
// KeepTogether is stored for downstream display, it does not change seating.
func PlanGroup(req GroupRequest) (*passengers.GroupSeating, error) {
	if len(req.SelectedIDs) < 2 {
		return nil, validationErrorf("group seating requires at least 2 passengers, got %d", len(req.SelectedIDs))
	}

	return &passengers.GroupSeating{
		GroupID:         uuid.New().String(),
		Size:            len(req.SelectedIDs),
		KeepTogether:    req.KeepTogether,
		LeadPassengerID: req.SelectedIDs[0].String(),
	}, nil
}

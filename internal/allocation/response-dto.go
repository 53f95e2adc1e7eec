package allocation

import "flightdesk/internal/passengers"

type GroupAllocationResponse struct {
	Group        passengers.GroupSeating `json:"group"`
	PassengerIDs []string                `json:"passenger_ids"`
}

// FamilyAllocationResponse reports the applied plan. Seats is parallel to
// PassengerIDs: one seat string per selected passenger, infants included.
type FamilyAllocationResponse struct {
	Family       passengers.FamilySeating `json:"family"`
	PassengerIDs []string                 `json:"passenger_ids"`
	Seats        []string                 `json:"seats"`
}

type ClearResponse struct {
	Cleared int `json:"cleared"`
}

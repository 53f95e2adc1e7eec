package seatevents

import "time"

type EventType string

const (
	EventSeatAssigned    EventType = "SEAT_ASSIGNED"
	EventGroupAllocated  EventType = "GROUP_ALLOCATED"
	EventFamilyAllocated EventType = "FAMILY_ALLOCATED"
	EventGroupCleared    EventType = "GROUP_CLEARED"
	EventFamilyCleared   EventType = "FAMILY_CLEARED"
	EventUpgradeApplied  EventType = "UPGRADE_APPLIED"
	EventUpgradeCleared  EventType = "UPGRADE_CLEARED"
)

// SeatEvent is published after a seat mutation has been persisted. Downstream
// consumers (boarding displays, crew manifests) replay these per flight, so
// events are partitioned by FlightID.
type SeatEvent struct {
	EventID      string    `json:"event_id"`
	Type         EventType `json:"type"`
	FlightID     string    `json:"flight_id"`
	PassengerIDs []string  `json:"passenger_ids,omitempty"`
	Seats        []string  `json:"seats,omitempty"`
	GroupID      string    `json:"group_id,omitempty"`
	FamilyID     string    `json:"family_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

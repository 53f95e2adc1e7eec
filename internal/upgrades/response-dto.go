package upgrades

import "flightdesk/internal/passengers"

type UpgradeResponse struct {
	PassengerID string `json:"passenger_id"`
	Seat        string `json:"seat"`
	Reseated    bool   `json:"reseated"`
}

// PreferenceResponse reports the stored preference and whether storing it
// moved the passenger to a better-matching premium seat.
type PreferenceResponse struct {
	PassengerID string                     `json:"passenger_id"`
	Preferences passengers.SeatPreferences `json:"preferences"`
	Seat        string                     `json:"seat"`
	Reseated    bool                       `json:"reseated"`
}

type ClearUpgradesResponse struct {
	Cleared int `json:"cleared"`
	Total   int `json:"total"`
}

package passengers

type CreatePassengerRequest struct {
	FlightID   string `json:"flight_id" binding:"required,uuid"`
	FullName   string `json:"full_name" binding:"required,min=2,max=100"`
	BookingRef string `json:"booking_ref" binding:"required,min=5,max=10"`
	Infant     bool   `json:"infant"`
}

type UpdatePassengerRequest struct {
	FullName       *string          `json:"full_name" binding:"omitempty,min=2,max=100"`
	Seat           *string          `json:"seat" binding:"omitempty"`
	CheckedIn      *bool            `json:"checked_in" binding:"omitempty"`
	PremiumUpgrade *bool            `json:"premium_upgrade" binding:"omitempty"`
	Preferences    *SeatPreferences `json:"seat_preferences" binding:"omitempty"`
}

type CheckInRequest struct {
	Seat string `json:"seat" binding:"required,min=2,max=4"`
}

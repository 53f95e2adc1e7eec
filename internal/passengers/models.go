package passengers

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Passenger is a booked traveler on a flight. Seat holds the current seat
// identifier ("5A") or is empty while unseated. Lap infants carry the seat of
// the adult they share with; they never occupy a seat slot of their own.
type Passenger struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FlightID       uuid.UUID `gorm:"type:uuid;index;not null" json:"flight_id"`
	FullName       string    `gorm:"not null" json:"full_name"`
	BookingRef     string    `gorm:"type:varchar(10);not null" json:"booking_ref"`
	Seat           string    `gorm:"type:varchar(4)" json:"seat"`
	Infant         bool      `gorm:"not null;default:false" json:"infant"`
	CheckedIn      bool      `gorm:"not null;default:false" json:"checked_in"`
	PremiumUpgrade bool      `gorm:"not null;default:false" json:"premium_upgrade"`

	SeatPreferences *SeatPreferences `gorm:"type:jsonb" json:"seat_preferences,omitempty"`
	GroupSeating    *GroupSeating    `gorm:"type:jsonb" json:"group_seating,omitempty"`
	FamilySeating   *FamilySeating   `gorm:"type:jsonb" json:"family_seating,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Passenger
func (Passenger) TableName() string {
	return "passengers"
}

func (p *Passenger) IsSeated() bool {
	return p.Seat != ""
}

// SeatPreferences records a passenger's seating wishes. Position values are
// "window", "aisle", "middle", "front", "back", "exitRow".
type SeatPreferences struct {
	Position   []string `json:"position"`
	Type       string   `json:"type,omitempty"` // standard, premium, exit, bulkhead
	NearFamily bool     `json:"near_family,omitempty"`
}

// HasPosition reports whether the preference list contains the given position.
func (sp *SeatPreferences) HasPosition(position string) bool {
	if sp == nil {
		return false
	}
	for _, p := range sp.Position {
		if p == position {
			return true
		}
	}
	return false
}

// GroupSeating tags every member of a travel group. Each passenger row stores
// its own copy; the shared GroupID ties them together.
type GroupSeating struct {
	GroupID         string `json:"group_id"`
	Size            int    `json:"size"`
	KeepTogether    bool   `json:"keep_together"`
	LeadPassengerID string `json:"lead_passenger_id"`
}

// FamilySeating tags every member of a family allocation, paired with the
// actual seat reassignment that the allocator produced.
type FamilySeating struct {
	FamilyID     string `json:"family_id"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Infants      int    `json:"infants"`
	AutoAllocate bool   `json:"auto_allocate"`
}

// JSONB plumbing. GORM stores the metadata structs as jsonb columns; a nil
// pointer maps to SQL NULL.

func (sp *SeatPreferences) Value() (driver.Value, error) {
	if sp == nil {
		return nil, nil
	}
	return jsonbValue(sp)
}
func (sp *SeatPreferences) Scan(value interface{}) error { return jsonbScan(value, sp) }

func (gs *GroupSeating) Value() (driver.Value, error) {
	if gs == nil {
		return nil, nil
	}
	return jsonbValue(gs)
}
func (gs *GroupSeating) Scan(value interface{}) error { return jsonbScan(value, gs) }

func (fs *FamilySeating) Value() (driver.Value, error) {
	if fs == nil {
		return nil, nil
	}
	return jsonbValue(fs)
}
func (fs *FamilySeating) Scan(value interface{}) error { return jsonbScan(value, fs) }

func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb: %w", err)
	}
	return string(data), nil
}

func jsonbScan(src, dest interface{}) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
	return json.Unmarshal(data, dest)
}

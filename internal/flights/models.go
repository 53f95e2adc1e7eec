package flights

import (
	"time"

	"github.com/google/uuid"
)

// Flight is the scheduling record passengers are checked in against.
type Flight struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Number        string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"number"`
	Origin        string    `gorm:"type:varchar(3);not null" json:"origin"`
	Destination   string    `gorm:"type:varchar(3);not null" json:"destination"`
	DepartureTime time.Time `gorm:"not null" json:"departure_time"`
	Gate          string    `gorm:"type:varchar(5)" json:"gate"`
	Status        string    `gorm:"type:varchar(20);check:status IN ('SCHEDULED', 'BOARDING', 'DEPARTED', 'CANCELLED');default:'SCHEDULED'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the table name for Flight
func (Flight) TableName() string {
	return "flights"
}

func (f *Flight) IsBoarding() bool {
	return f.Status == "BOARDING"
}

func (f *Flight) IsOpen() bool {
	return f.Status == "SCHEDULED" || f.Status == "BOARDING"
}

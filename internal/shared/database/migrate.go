package database

import (
	"flightdesk/internal/flights"
	"flightdesk/internal/passengers"
	"flightdesk/internal/staff"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults on primary keys need this extension
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&staff.Staff{},
		&flights.Flight{},
		&passengers.Passenger{},
	)
}

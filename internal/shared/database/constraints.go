package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Prevent two seated passengers from holding the same seat on a flight.
	// Infants share an adult's seat, so they are excluded from the constraint.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_flight
		ON passengers (flight_id, seat)
		WHERE seat <> '' AND infant = false;
	`).Error
	if err != nil {
		return err
	}

	// Manifest listings always scan by flight in creation order
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_passengers_flight_manifest
		ON passengers (flight_id, created_at, id);
	`).Error
	if err != nil {
		return err
	}

	// Premium inventory and upgrade-holder queries filter on the flag
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_passengers_flight_premium
		ON passengers (flight_id)
		WHERE premium_upgrade = true;
	`).Error
	if err != nil {
		return err
	}

	return nil
}

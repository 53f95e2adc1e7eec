package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"flightdesk/internal/flights"
	"flightdesk/internal/passengers"
	"flightdesk/internal/shared/config"
	"flightdesk/internal/shared/database"
	"flightdesk/internal/staff"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting FlightDesk Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"passengers",
		"flights",
		"staff",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Seed staff first (no dependencies)
	if err := s.SeedStaff(); err != nil {
		return fmt.Errorf("failed to seed staff: %w", err)
	}

	// Seed flights
	flightIDs, err := s.SeedFlights()
	if err != nil {
		return fmt.Errorf("failed to seed flights: %w", err)
	}

	// Seed passenger manifests
	if err := s.SeedPassengers(flightIDs); err != nil {
		return fmt.Errorf("failed to seed passengers: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedStaff creates 3 staff members: 1 admin, 1 supervisor and 1 agent
func (s *Seeder) SeedStaff() error {
	fmt.Println("  👤 Seeding staff...")

	// Hash password for all staff (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	staffData := []struct {
		firstName string
		lastName  string
		email     string
		role      staff.Role
	}{
		{"Ada", "Okoro", "admin@flightdesk.io", staff.RoleAdmin},
		{"Sam", "Veldt", "supervisor@flightdesk.io", staff.RoleSupervisor},
		{"June", "Park", "agent@flightdesk.io", staff.RoleAgent},
	}

	for _, data := range staffData {
		member := staff.Staff{
			ID:        uuid.New(),
			FirstName: data.firstName,
			LastName:  data.lastName,
			Email:     data.email,
			Password:  string(hashedPassword),
			Role:      data.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&member).Error; err != nil {
			return fmt.Errorf("failed to create staff member %s: %w", data.email, err)
		}

		fmt.Printf("    ✅ Created staff member: %s (%s)\n", member.Email, member.Role)
	}

	return nil
}

// SeedFlights creates two departures boarding within the next few hours
func (s *Seeder) SeedFlights() (map[string]uuid.UUID, error) {
	fmt.Println("  ✈️ Seeding flights...")

	flightIDs := make(map[string]uuid.UUID)

	flightData := []struct {
		key           string
		number        string
		origin        string
		destination   string
		departureTime time.Time
		gate          string
		status        string
	}{
		{"morning", "FD201", "AMS", "LIS", time.Now().Add(3 * time.Hour), "B14", "SCHEDULED"},
		{"evening", "FD305", "AMS", "OSL", time.Now().Add(9 * time.Hour), "C02", "SCHEDULED"},
	}

	for _, data := range flightData {
		flight := flights.Flight{
			ID:            uuid.New(),
			Number:        data.number,
			Origin:        data.origin,
			Destination:   data.destination,
			DepartureTime: data.departureTime,
			Gate:          data.gate,
			Status:        data.status,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&flight).Error; err != nil {
			return nil, fmt.Errorf("failed to create flight %s: %w", data.number, err)
		}

		flightIDs[data.key] = flight.ID
		fmt.Printf("    ✅ Created flight: %s %s-%s\n", flight.Number, flight.Origin, flight.Destination)
	}

	return flightIDs, nil
}

// SeedPassengers fills the morning flight with a mixed manifest: a family
// with an infant, a pair of colleagues for group seating, a premium upgrade
// candidate and a few already checked-in travellers.
func (s *Seeder) SeedPassengers(flightIDs map[string]uuid.UUID) error {
	fmt.Println("  🧳 Seeding passengers...")

	morning := flightIDs["morning"]
	evening := flightIDs["evening"]

	passengerData := []struct {
		flightID  uuid.UUID
		fullName  string
		booking   string
		seat      string
		infant    bool
		checkedIn bool
		premium   bool
	}{
		// Family of four travelling together, infant on a lap
		{morning, "Marta Silva", "FD-88401", "", false, false, false},
		{morning, "Rui Silva", "FD-88401", "", false, false, false},
		{morning, "Ines Silva", "FD-88401", "", false, false, false},
		{morning, "Tiago Silva", "FD-88401", "", true, false, false},

		// Colleagues who want adjacent seats
		{morning, "Petra Novak", "FD-88417", "", false, false, false},
		{morning, "Karel Dvorak", "FD-88417", "", false, false, false},

		// Frequent flyer eyeing a premium upgrade
		{morning, "Hugo Lindqvist", "FD-88430", "7C", false, false, false},

		// Already through check-in
		{morning, "Noor Haddad", "FD-88442", "4A", false, true, false},
		{morning, "Elif Demir", "FD-88455", "2B", false, true, true},

		// Evening flight manifest
		{evening, "Olav Bratland", "FD-90112", "", false, false, false},
		{evening, "Sigrid Moen", "FD-90113", "10F", false, true, false},
	}

	for _, data := range passengerData {
		passenger := passengers.Passenger{
			ID:             uuid.New(),
			FlightID:       data.flightID,
			FullName:       data.fullName,
			BookingRef:     data.booking,
			Seat:           data.seat,
			Infant:         data.infant,
			CheckedIn:      data.checkedIn,
			PremiumUpgrade: data.premium,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&passenger).Error; err != nil {
			return fmt.Errorf("failed to create passenger %s: %w", data.fullName, err)
		}

		fmt.Printf("    ✅ Created passenger: %s (%s)\n", passenger.FullName, passenger.BookingRef)
	}

	return nil
}

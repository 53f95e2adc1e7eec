package flights

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateFlight(ctx context.Context, flight *Flight) error
	GetFlightByID(ctx context.Context, id uuid.UUID) (*Flight, error)
	GetFlightByNumber(ctx context.Context, number string) (*Flight, error)
	ListFlights(ctx context.Context) ([]Flight, error)
	UpdateFlightStatus(ctx context.Context, id uuid.UUID, status string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateFlight(ctx context.Context, flight *Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *repository) GetFlightByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	var flight Flight
	err := r.db.WithContext(ctx).First(&flight, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *repository) GetFlightByNumber(ctx context.Context, number string) (*Flight, error) {
	var flight Flight
	err := r.db.WithContext(ctx).First(&flight, "number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *repository) ListFlights(ctx context.Context) ([]Flight, error) {
	var list []Flight
	err := r.db.WithContext(ctx).
		Order("departure_time ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) UpdateFlightStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&Flight{}).Where("id = ?", id).Update("status", status).Error
}

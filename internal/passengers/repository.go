package passengers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreatePassenger(ctx context.Context, passenger *Passenger) error
	GetPassengerByID(ctx context.Context, id uuid.UUID) (*Passenger, error)
	GetPassengersByIDs(ctx context.Context, ids []uuid.UUID) ([]Passenger, error)
	ListByFlight(ctx context.Context, flightID uuid.UUID) ([]Passenger, error)
	UpdatePassenger(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeletePassenger(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePassenger(ctx context.Context, passenger *Passenger) error {
	return r.db.WithContext(ctx).Create(passenger).Error
}

func (r *repository) GetPassengerByID(ctx context.Context, id uuid.UUID) (*Passenger, error) {
	var passenger Passenger
	err := r.db.WithContext(ctx).First(&passenger, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (r *repository) GetPassengersByIDs(ctx context.Context, ids []uuid.UUID) ([]Passenger, error) {
	var list []Passenger
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

// ListByFlight returns the flight manifest in a stable order. The allocators
// depend on this ordering when mapping family members onto seats.
func (r *repository) ListByFlight(ctx context.Context, flightID uuid.UUID) ([]Passenger, error) {
	var list []Passenger
	err := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) UpdatePassenger(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Passenger{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeletePassenger(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Passenger{}, "id = ?", id).Error
}

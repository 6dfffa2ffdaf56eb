package repository

import (
	"context"
	"errors"

	"rentaldesk-backend/internal/domain"
)

// ErrNotFound is returned by lookups for ids that do not resolve to a record.
var ErrNotFound = errors.New("record not found")

type EquipmentRepository interface {
	// Upsert replaces the record with a matching id in place, preserving
	// insertion order, or appends it when the id is new.
	Upsert(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	// Delete removes the record; an unknown id is a silent no-op.
	Delete(ctx context.Context, id string) error
}

type RentalRepository interface {
	Create(ctx context.Context, rt *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Update(ctx context.Context, rt *domain.Rental) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error)
	// MarkRepaired completes every open repair for the equipment in one
	// write: all rentals matching damaged && repairRequested && !repaired
	// get repaired=true. Returns the number of rentals transitioned.
	MarkRepaired(ctx context.Context, equipmentID string) (int32, error)
	// DeleteByEquipment removes every rental referencing the equipment.
	// Serves the cascading-delete contract of equipment deletion.
	DeleteByEquipment(ctx context.Context, equipmentID string) error
}

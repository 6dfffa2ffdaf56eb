package service

import (
	"context"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/utils"
)

// EquipmentInput carries the admin form fields for creating or editing
// an equipment record.
type EquipmentInput struct {
	Name       string
	Quantity   int32
	PriceCents int32
	Note       string
}

// RentalInput carries the user form fields for a rental request.
// Password is the plaintext 4-digit self-service password; it is hashed
// before anything is stored.
type RentalInput struct {
	EquipmentID    string
	Quantity       int32
	StartDate      string
	EndDate        string
	UserName       string
	UserDepartment string
	UserPosition   string
	Password       string
}

// EquipmentOverview is an equipment record together with its derived counts,
// shaped for list views.
type EquipmentOverview struct {
	Equipment        domain.Equipment
	Availability     utils.Availability
	HasPendingRepair bool
}

type EquipmentService interface {
	// Upsert updates the record editingID resolves to (id and registered
	// date unchanged), or creates a new record when editingID is empty or
	// unknown.
	Upsert(ctx context.Context, input EquipmentInput, editingID string) (*domain.Equipment, error)
	Get(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListOverview(ctx context.Context) ([]EquipmentOverview, error)
	// Delete removes the equipment and cascades to every rental
	// referencing it. An unknown id is a silent no-op.
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, id string) (*utils.Availability, error)
	HasPendingRepair(ctx context.Context, id string) (bool, error)
}

type RentalService interface {
	Submit(ctx context.Context, input RentalInput) (*domain.Rental, error)
	Get(ctx context.Context, id string) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error)
	Approve(ctx context.Context, id string) (*domain.Rental, error)
	Reject(ctx context.Context, id string) (*domain.Rental, error)
	MarkReturned(ctx context.Context, id string) (*domain.Rental, error)
	MarkDamaged(ctx context.Context, id, note string) (*domain.Rental, error)
	RequestRepair(ctx context.Context, id string) (*domain.Rental, error)
	// CompleteRepairs resolves every open repair for the equipment in one
	// batch and returns how many rentals were transitioned. Idempotent.
	CompleteRepairs(ctx context.Context, equipmentID string) (int32, error)
	// VerifyPassword checks a requester's 4-digit password against the
	// stored hash for self-service identity confirmation.
	VerifyPassword(ctx context.Context, id, password string) (bool, error)
	// ListOverdue returns approved, unreturned rentals whose end date is
	// before asOf (yyyy-mm-dd).
	ListOverdue(ctx context.Context, asOf string) ([]domain.Rental, error)
}

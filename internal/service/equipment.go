package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/repository"
	"rentaldesk-backend/internal/utils"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	rentalRepo    repository.RentalRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, rentalRepo repository.RentalRepository) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		rentalRepo:    rentalRepo,
	}
}

func (s *equipmentService) Upsert(ctx context.Context, input EquipmentInput, editingID string) (*domain.Equipment, error) {
	if input.Name == "" {
		return nil, invalid("name", "is required")
	}
	if input.Quantity < 0 {
		return nil, invalid("quantity", "must not be negative")
	}
	if input.PriceCents < 0 {
		return nil, invalid("price_cents", "must not be negative")
	}

	if editingID != "" {
		existing, err := s.equipmentRepo.GetByID(ctx, editingID)
		if err == nil {
			existing.Name = input.Name
			existing.Quantity = input.Quantity
			existing.PriceCents = input.PriceCents
			existing.Note = input.Note
			if err := s.equipmentRepo.Upsert(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// Unknown editing id falls through to creation.
	}

	eq := &domain.Equipment{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Quantity:       input.Quantity,
		PriceCents:     input.PriceCents,
		RegisteredDate: utils.Today(),
		Note:           input.Note,
	}
	if err := s.equipmentRepo.Upsert(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return eq, err
}

func (s *equipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *equipmentService) ListOverview(ctx context.Context) ([]EquipmentOverview, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	overviews := make([]EquipmentOverview, 0, len(items))
	for i := range items {
		overviews = append(overviews, EquipmentOverview{
			Equipment:        items[i],
			Availability:     utils.ComputeAvailability(&items[i], rentals),
			HasPendingRepair: utils.HasPendingRepair(&items[i], rentals),
		})
	}
	return overviews, nil
}

func (s *equipmentService) Delete(ctx context.Context, id string) error {
	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	// Cascade: no rental may outlive its equipment.
	return s.rentalRepo.DeleteByEquipment(ctx, id)
}

func (s *equipmentService) Availability(ctx context.Context, id string) (*utils.Availability, error) {
	eq, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	availability := utils.ComputeAvailability(eq, rentals)
	return &availability, nil
}

func (s *equipmentService) HasPendingRepair(ctx context.Context, id string) (bool, error) {
	eq, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return false, err
	}
	return utils.HasPendingRepair(eq, rentals), nil
}

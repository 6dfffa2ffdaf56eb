package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/repository"
	"rentaldesk-backend/internal/utils"
)

// Self-service passwords are exactly 4 ASCII digits.
var passwordPattern = regexp.MustCompile(`^[0-9]{4}$`)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, equipmentRepo repository.EquipmentRepository) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
	}
}

func (s *rentalService) Submit(ctx context.Context, input RentalInput) (*domain.Rental, error) {
	if _, err := s.equipmentRepo.GetByID(ctx, input.EquipmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if input.Quantity < 1 {
		return nil, invalid("quantity", "must be a positive integer")
	}
	if input.UserName == "" {
		return nil, invalid("user_name", "is required")
	}
	start, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, invalid("start_date", err.Error())
	}
	end, err := utils.ParseDate(input.EndDate)
	if err != nil {
		return nil, invalid("end_date", err.Error())
	}
	if !end.After(start) {
		return nil, invalid("end_date", "must be after the start date")
	}
	if !passwordPattern.MatchString(input.Password) {
		return nil, invalid("password", "must be exactly 4 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		ID:             uuid.NewString(),
		EquipmentID:    input.EquipmentID,
		Quantity:       input.Quantity,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		UserName:       input.UserName,
		UserDepartment: input.UserDepartment,
		UserPosition:   input.UserPosition,
		PasswordHash:   string(hash),
		Status:         domain.RentalStatusPending,
		RequestDate:    utils.Today(),
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental request submitted",
		"rental_id", rental.ID,
		"equipment_id", rental.EquipmentID,
		"quantity", rental.Quantity,
		"user_name", rental.UserName)
	return rental, nil
}

func (s *rentalService) Get(ctx context.Context, id string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return rt, err
}

func (s *rentalService) List(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByEquipment(ctx, equipmentID)
}

func (s *rentalService) Approve(ctx context.Context, id string) (*domain.Rental, error) {
	return s.setStatus(ctx, id, domain.RentalStatusApproved)
}

func (s *rentalService) Reject(ctx context.Context, id string) (*domain.Rental, error) {
	return s.setStatus(ctx, id, domain.RentalStatusRejected)
}

// setStatus moves a pending rental to its terminal decision. Approved and
// rejected are terminal; re-deciding is an error.
func (s *rentalService) setStatus(ctx context.Context, id string, status domain.RentalStatus) (*domain.Rental, error) {
	rt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt.Status != domain.RentalStatusPending {
		return nil, ErrNotPending
	}
	rt.Status = status
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.Info("Rental status changed", "rental_id", rt.ID, "status", rt.Status)
	return rt, nil
}

func (s *rentalService) MarkReturned(ctx context.Context, id string) (*domain.Rental, error) {
	rt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt.Status != domain.RentalStatusApproved {
		return nil, ErrNotApproved
	}
	today := utils.Today()
	rt.Returned = true
	rt.ReturnedDate = &today
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.Info("Rental returned", "rental_id", rt.ID, "returned_date", today)
	return rt, nil
}

func (s *rentalService) MarkDamaged(ctx context.Context, id, note string) (*domain.Rental, error) {
	rt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rt.Damaged = true
	rt.DamageNote = note
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.Info("Rental marked damaged", "rental_id", rt.ID)
	return rt, nil
}

func (s *rentalService) RequestRepair(ctx context.Context, id string) (*domain.Rental, error) {
	rt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rt.Damaged {
		return nil, ErrNotDamaged
	}
	rt.RepairRequested = true
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	logger.Info("Repair requested", "rental_id", rt.ID, "equipment_id", rt.EquipmentID)
	return rt, nil
}

func (s *rentalService) CompleteRepairs(ctx context.Context, equipmentID string) (int32, error) {
	count, err := s.rentalRepo.MarkRepaired(ctx, equipmentID)
	if err != nil {
		return 0, err
	}
	logger.Info("Repairs completed", "equipment_id", equipmentID, "count", count)
	return count, nil
}

func (s *rentalService) VerifyPassword(ctx context.Context, id, password string) (bool, error) {
	rt, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(rt.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *rentalService) ListOverdue(ctx context.Context, asOf string) ([]domain.Rental, error) {
	cutoff, err := utils.ParseDate(asOf)
	if err != nil {
		return nil, invalid("as_of", err.Error())
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var overdue []domain.Rental
	for _, rt := range rentals {
		if !rt.ActiveLoan() {
			continue
		}
		end, err := utils.ParseDate(rt.EndDate)
		if err != nil {
			continue
		}
		if end.Before(cutoff) {
			overdue = append(overdue, rt)
		}
	}
	return overdue, nil
}

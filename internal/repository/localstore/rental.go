package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/kvstore"
	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/repository"
)

type rentalRepository struct {
	mu    sync.RWMutex
	kv    kvstore.Store
	items []domain.Rental
}

func newRentalRepository(ctx context.Context, kv kvstore.Store) (*rentalRepository, error) {
	r := &rentalRepository{kv: kv}
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *rentalRepository) load(ctx context.Context) error {
	data, err := r.kv.Get(ctx, kvstore.KeyRentals)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &r.items); err != nil {
		logger.Warn("Discarding corrupt rentals collection", "error", err)
		r.items = nil
	}
	return nil
}

func (r *rentalRepository) flush(ctx context.Context) error {
	data, err := json.Marshal(r.items)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, kvstore.KeyRentals, data)
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *rt)
	return r.flush(ctx)
}

func (r *rentalRepository) GetByID(_ context.Context, id string) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			rt := r.items[i]
			return &rt, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == rt.ID {
			r.items[i] = *rt
			return r.flush(ctx)
		}
	}
	return repository.ErrNotFound
}

func (r *rentalRepository) List(_ context.Context) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Rental, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *rentalRepository) ListByEquipment(_ context.Context, equipmentID string) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Rental
	for _, rt := range r.items {
		if rt.EquipmentID == equipmentID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *rentalRepository) MarkRepaired(ctx context.Context, equipmentID string) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int32
	for i := range r.items {
		rt := &r.items[i]
		if rt.EquipmentID == equipmentID && rt.AwaitingRepair() {
			rt.Repaired = true
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return count, r.flush(ctx)
}

func (r *rentalRepository) DeleteByEquipment(ctx context.Context, equipmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, rt := range r.items {
		if rt.EquipmentID != equipmentID {
			kept = append(kept, rt)
		}
	}
	if len(kept) == len(r.items) {
		return nil
	}
	r.items = kept
	return r.flush(ctx)
}

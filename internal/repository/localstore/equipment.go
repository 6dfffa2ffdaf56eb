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

type equipmentRepository struct {
	mu    sync.RWMutex
	kv    kvstore.Store
	items []domain.Equipment
}

func newEquipmentRepository(ctx context.Context, kv kvstore.Store) (*equipmentRepository, error) {
	r := &equipmentRepository{kv: kv}
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *equipmentRepository) load(ctx context.Context) error {
	data, err := r.kv.Get(ctx, kvstore.KeyEquipments)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &r.items); err != nil {
		// Corrupt data is fatal to this collection only: reset to empty.
		logger.Warn("Discarding corrupt equipments collection", "error", err)
		r.items = nil
	}
	return nil
}

func (r *equipmentRepository) flush(ctx context.Context) error {
	data, err := json.Marshal(r.items)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, kvstore.KeyEquipments, data)
}

func (r *equipmentRepository) Upsert(ctx context.Context, eq *domain.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	replaced := false
	for i := range r.items {
		if r.items[i].ID == eq.ID {
			r.items[i] = *eq
			replaced = true
			break
		}
	}
	if !replaced {
		r.items = append(r.items, *eq)
	}
	return r.flush(ctx)
}

func (r *equipmentRepository) GetByID(_ context.Context, id string) (*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			eq := r.items[i]
			return &eq, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *equipmentRepository) List(_ context.Context) ([]domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Equipment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, eq := range r.items {
		if eq.ID != id {
			kept = append(kept, eq)
		}
	}
	if len(kept) == len(r.items) {
		// Unknown id: silent no-op, nothing to persist.
		return nil
	}
	r.items = kept
	return r.flush(ctx)
}

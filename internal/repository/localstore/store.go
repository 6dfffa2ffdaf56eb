// Package localstore implements the repositories over the key-value
// persistence layer. Both collections are loaded into memory once at open
// and written back in full after every mutation, preserving the
// read-once, write-through model of the original storage design.
package localstore

import (
	"context"

	"rentaldesk-backend/internal/kvstore"
	"rentaldesk-backend/internal/repository"
)

type Store struct {
	repository.EquipmentRepository
	repository.RentalRepository
	kv kvstore.Store
}

// Open loads both collections from the key-value store. A missing or corrupt
// collection starts empty; any other storage failure aborts the open.
func Open(ctx context.Context, kv kvstore.Store) (*Store, error) {
	equipment, err := newEquipmentRepository(ctx, kv)
	if err != nil {
		return nil, err
	}
	rentals, err := newRentalRepository(ctx, kv)
	if err != nil {
		return nil, err
	}
	return &Store{
		EquipmentRepository: equipment,
		RentalRepository:    rentals,
		kv:                  kv,
	}, nil
}

func (s *Store) Close() error {
	return s.kv.Close()
}

package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/kvstore"
	"rentaldesk-backend/internal/repository"
)

func TestStore_WriteThrough(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	store, err := Open(ctx, kv)
	require.NoError(t, err)

	eq := &domain.Equipment{ID: "E1", Name: "Drill", Quantity: 5, RegisteredDate: "2026-09-01"}
	require.NoError(t, store.EquipmentRepository.Upsert(ctx, eq))

	rt := &domain.Rental{ID: "R1", EquipmentID: "E1", Quantity: 2, Status: domain.RentalStatusPending}
	require.NoError(t, store.RentalRepository.Create(ctx, rt))

	// A fresh open over the same backend must see every mutation.
	reopened, err := Open(ctx, kv)
	require.NoError(t, err)

	gotEq, err := reopened.EquipmentRepository.GetByID(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, "Drill", gotEq.Name)

	gotRt, err := reopened.RentalRepository.GetByID(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusPending, gotRt.Status)
}

func TestStore_CorruptCollectionStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Put(ctx, kvstore.KeyEquipments, []byte("{not json")))
	require.NoError(t, kv.Put(ctx, kvstore.KeyRentals, []byte("[truncated")))

	store, err := Open(ctx, kv)
	require.NoError(t, err)

	items, err := store.EquipmentRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	rentals, err := store.RentalRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rentals)
}

func TestEquipmentRepository(t *testing.T) {
	ctx := context.Background()

	open := func(t *testing.T) *Store {
		t.Helper()
		store, err := Open(ctx, kvstore.NewMemoryStore())
		require.NoError(t, err)
		return store
	}

	t.Run("Upsert preserves insertion order", func(t *testing.T) {
		store := open(t)
		for _, id := range []string{"E1", "E2", "E3"} {
			require.NoError(t, store.EquipmentRepository.Upsert(ctx, &domain.Equipment{ID: id, Name: id}))
		}
		// Editing the middle record must not move it.
		require.NoError(t, store.EquipmentRepository.Upsert(ctx, &domain.Equipment{ID: "E2", Name: "renamed"}))

		items, err := store.EquipmentRepository.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "E1", items[0].ID)
		assert.Equal(t, "E2", items[1].ID)
		assert.Equal(t, "renamed", items[1].Name)
		assert.Equal(t, "E3", items[2].ID)
	})

	t.Run("GetByID unknown", func(t *testing.T) {
		store := open(t)
		_, err := store.EquipmentRepository.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		store := open(t)
		require.NoError(t, store.EquipmentRepository.Upsert(ctx, &domain.Equipment{ID: "E1", Name: "Drill"}))
		require.NoError(t, store.EquipmentRepository.Delete(ctx, "E1"))
		_, err := store.EquipmentRepository.GetByID(ctx, "E1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Delete unknown is a no-op", func(t *testing.T) {
		store := open(t)
		assert.NoError(t, store.EquipmentRepository.Delete(ctx, "missing"))
	})

	t.Run("GetByID returns a copy", func(t *testing.T) {
		store := open(t)
		require.NoError(t, store.EquipmentRepository.Upsert(ctx, &domain.Equipment{ID: "E1", Name: "Drill"}))
		got, err := store.EquipmentRepository.GetByID(ctx, "E1")
		require.NoError(t, err)
		got.Name = "mutated"

		fresh, err := store.EquipmentRepository.GetByID(ctx, "E1")
		require.NoError(t, err)
		assert.Equal(t, "Drill", fresh.Name)
	})
}

func TestRentalRepository(t *testing.T) {
	ctx := context.Background()

	open := func(t *testing.T) *Store {
		t.Helper()
		store, err := Open(ctx, kvstore.NewMemoryStore())
		require.NoError(t, err)
		return store
	}

	t.Run("Update unknown rental", func(t *testing.T) {
		store := open(t)
		err := store.RentalRepository.Update(ctx, &domain.Rental{ID: "missing"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("ListByEquipment filters", func(t *testing.T) {
		store := open(t)
		require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{ID: "R1", EquipmentID: "E1"}))
		require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{ID: "R2", EquipmentID: "E2"}))
		require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{ID: "R3", EquipmentID: "E1"}))

		got, err := store.RentalRepository.ListByEquipment(ctx, "E1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "R1", got[0].ID)
		assert.Equal(t, "R3", got[1].ID)
	})

	t.Run("MarkRepaired only touches open repair requests", func(t *testing.T) {
		store := open(t)
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E1", Damaged: true, RepairRequested: true},
			{ID: "R2", EquipmentID: "E1", Damaged: true},
			{ID: "R3", EquipmentID: "E1", Damaged: true, RepairRequested: true, Repaired: true},
			{ID: "R4", EquipmentID: "E2", Damaged: true, RepairRequested: true},
		}
		for i := range rentals {
			require.NoError(t, store.RentalRepository.Create(ctx, &rentals[i]))
		}

		count, err := store.RentalRepository.MarkRepaired(ctx, "E1")
		require.NoError(t, err)
		assert.Equal(t, int32(1), count)

		got, err := store.RentalRepository.GetByID(ctx, "R1")
		require.NoError(t, err)
		assert.True(t, got.Repaired)
		got, err = store.RentalRepository.GetByID(ctx, "R2")
		require.NoError(t, err)
		assert.False(t, got.Repaired)
		got, err = store.RentalRepository.GetByID(ctx, "R4")
		require.NoError(t, err)
		assert.False(t, got.Repaired)
	})

	t.Run("DeleteByEquipment removes all matching rentals", func(t *testing.T) {
		store := open(t)
		require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{ID: "R1", EquipmentID: "E1"}))
		require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{ID: "R2", EquipmentID: "E2"}))
		require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{ID: "R3", EquipmentID: "E1"}))

		require.NoError(t, store.RentalRepository.DeleteByEquipment(ctx, "E1"))

		rentals, err := store.RentalRepository.List(ctx)
		require.NoError(t, err)
		require.Len(t, rentals, 1)
		assert.Equal(t, "R2", rentals[0].ID)
	})
}

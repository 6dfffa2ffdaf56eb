package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentaldesk-backend/internal/domain"
)

func TestComputeAvailability(t *testing.T) {
	equipment := &domain.Equipment{ID: "E1", Name: "Projector", Quantity: 5}

	t.Run("No rentals", func(t *testing.T) {
		got := ComputeAvailability(equipment, nil)
		assert.Equal(t, int32(0), got.Rented)
		assert.Equal(t, int32(0), got.DamagedUnrepaired)
		assert.Equal(t, int32(5), got.Available)
	})

	t.Run("Approved unreturned rental reduces availability", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E1", Quantity: 2, Status: domain.RentalStatusApproved},
		}
		got := ComputeAvailability(equipment, rentals)
		assert.Equal(t, int32(2), got.Rented)
		assert.Equal(t, int32(3), got.Available)
	})

	t.Run("Damaged unrepaired counts regardless of status", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E1", Quantity: 2, Status: domain.RentalStatusApproved},
			{ID: "R2", EquipmentID: "E1", Quantity: 1, Status: domain.RentalStatusRejected, Damaged: true},
		}
		got := ComputeAvailability(equipment, rentals)
		assert.Equal(t, int32(2), got.Rented)
		assert.Equal(t, int32(1), got.DamagedUnrepaired)
		assert.Equal(t, int32(2), got.Available)
	})

	t.Run("Returned rentals no longer count as rented", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E1", Quantity: 2, Status: domain.RentalStatusApproved, Returned: true},
		}
		got := ComputeAvailability(equipment, rentals)
		assert.Equal(t, int32(0), got.Rented)
		assert.Equal(t, int32(5), got.Available)
	})

	t.Run("Returned but damaged still reduces availability", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E1", Quantity: 2, Status: domain.RentalStatusApproved, Returned: true, Damaged: true},
		}
		got := ComputeAvailability(equipment, rentals)
		assert.Equal(t, int32(0), got.Rented)
		assert.Equal(t, int32(2), got.DamagedUnrepaired)
		assert.Equal(t, int32(3), got.Available)
	})

	t.Run("Repaired damage is restored", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E1", Quantity: 1, Status: domain.RentalStatusApproved, Returned: true, Damaged: true, RepairRequested: true, Repaired: true},
		}
		got := ComputeAvailability(equipment, rentals)
		assert.Equal(t, int32(0), got.DamagedUnrepaired)
		assert.Equal(t, int32(5), got.Available)
	})

	t.Run("Other equipment is ignored", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E2", Quantity: 4, Status: domain.RentalStatusApproved},
			{ID: "R2", EquipmentID: "E2", Quantity: 1, Damaged: true},
		}
		got := ComputeAvailability(equipment, rentals)
		assert.Equal(t, int32(5), got.Available)
	})

	t.Run("Pending rentals do not count", func(t *testing.T) {
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E1", Quantity: 3, Status: domain.RentalStatusPending},
		}
		got := ComputeAvailability(equipment, rentals)
		assert.Equal(t, int32(0), got.Rented)
		assert.Equal(t, int32(5), got.Available)
	})

	t.Run("Available goes negative when over-committed", func(t *testing.T) {
		small := &domain.Equipment{ID: "E1", Quantity: 1}
		rentals := []domain.Rental{
			{ID: "R1", EquipmentID: "E1", Quantity: 2, Status: domain.RentalStatusApproved},
			{ID: "R2", EquipmentID: "E1", Quantity: 1, Damaged: true},
		}
		got := ComputeAvailability(small, rentals)
		assert.Equal(t, int32(-2), got.Available)
	})
}

func TestHasPendingRepair(t *testing.T) {
	equipment := &domain.Equipment{ID: "E1", Quantity: 5}

	tests := []struct {
		name     string
		rental   domain.Rental
		expected bool
	}{
		{"Damaged with repair requested", domain.Rental{EquipmentID: "E1", Damaged: true, RepairRequested: true}, true},
		{"Damaged without repair request", domain.Rental{EquipmentID: "E1", Damaged: true}, false},
		{"Already repaired", domain.Rental{EquipmentID: "E1", Damaged: true, RepairRequested: true, Repaired: true}, false},
		{"Undamaged", domain.Rental{EquipmentID: "E1"}, false},
		{"Other equipment", domain.Rental{EquipmentID: "E2", Damaged: true, RepairRequested: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasPendingRepair(equipment, []domain.Rental{tt.rental})
			assert.Equal(t, tt.expected, got)
		})
	}
}

package utils

import (
	"rentaldesk-backend/internal/domain"
)

// Availability holds the derived unit counts for one equipment item.
type Availability struct {
	Rented            int32 `json:"rented"`
	DamagedUnrepaired int32 `json:"damaged_unrepaired"`
	Available         int32 `json:"available"`
}

// ComputeAvailability derives the rented, damaged-unrepaired and available
// counts for the given equipment from the full rental set.
//
// Available may go negative when the owned quantity was edited below the
// committed rentals. The value is intentionally not clamped; callers must
// treat a negative count as zero capacity and offer no further rentals.
func ComputeAvailability(eq *domain.Equipment, rentals []domain.Rental) Availability {
	var rented, damaged int32
	for i := range rentals {
		r := &rentals[i]
		if r.EquipmentID != eq.ID {
			continue
		}
		if r.ActiveLoan() {
			rented += r.Quantity
		}
		if r.DamagedUnrepaired() {
			damaged += r.Quantity
		}
	}
	return Availability{
		Rented:            rented,
		DamagedUnrepaired: damaged,
		Available:         eq.Quantity - rented - damaged,
	}
}

// HasPendingRepair reports whether any rental of the equipment is damaged,
// has a repair requested and is not yet repaired.
func HasPendingRepair(eq *domain.Equipment, rentals []domain.Rental) bool {
	for i := range rentals {
		if rentals[i].EquipmentID == eq.ID && rentals[i].AwaitingRepair() {
			return true
		}
	}
	return false
}

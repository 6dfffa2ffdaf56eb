package http

import (
	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/service"
	"rentaldesk-backend/internal/utils"
)

type equipmentRequest struct {
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	PriceCents int32  `json:"price_cents"`
	Note       string `json:"note"`
}

type equipmentResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	PriceCents     int32  `json:"price_cents"`
	RegisteredDate string `json:"registered_date"`
	Note           string `json:"note,omitempty"`
}

type equipmentOverviewResponse struct {
	equipmentResponse
	Rented            int32 `json:"rented"`
	DamagedUnrepaired int32 `json:"damaged_unrepaired"`
	Available         int32 `json:"available"`
	HasPendingRepair  bool  `json:"has_pending_repair"`
}

type rentalRequest struct {
	EquipmentID    string `json:"equipment_id"`
	Quantity       int32  `json:"quantity"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	UserName       string `json:"user_name"`
	UserDepartment string `json:"user_department"`
	UserPosition   string `json:"user_position"`
	Password       string `json:"password"`
}

// rentalResponse mirrors the rental record without the password hash.
type rentalResponse struct {
	ID              string  `json:"id"`
	EquipmentID     string  `json:"equipment_id"`
	Quantity        int32   `json:"quantity"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	UserName        string  `json:"user_name"`
	UserDepartment  string  `json:"user_department"`
	UserPosition    string  `json:"user_position"`
	Status          string  `json:"status"`
	Returned        bool    `json:"returned"`
	ReturnedDate    *string `json:"returned_date,omitempty"`
	Damaged         bool    `json:"damaged"`
	DamageNote      string  `json:"damage_note"`
	RepairRequested bool    `json:"repair_requested"`
	Repaired        bool    `json:"repaired"`
	RequestDate     string  `json:"request_date"`
}

type damageRequest struct {
	Note string `json:"note"`
}

type verifyPasswordRequest struct {
	Password string `json:"password"`
}

type verifyPasswordResponse struct {
	Valid bool `json:"valid"`
}

type completeRepairsResponse struct {
	Repaired int32 `json:"repaired"`
}

func toEquipmentResponse(eq *domain.Equipment) equipmentResponse {
	return equipmentResponse{
		ID:             eq.ID,
		Name:           eq.Name,
		Quantity:       eq.Quantity,
		PriceCents:     eq.PriceCents,
		RegisteredDate: eq.RegisteredDate,
		Note:           eq.Note,
	}
}

func toEquipmentOverviewResponse(ov *service.EquipmentOverview) equipmentOverviewResponse {
	return equipmentOverviewResponse{
		equipmentResponse: toEquipmentResponse(&ov.Equipment),
		Rented:            ov.Availability.Rented,
		DamagedUnrepaired: ov.Availability.DamagedUnrepaired,
		Available:         ov.Availability.Available,
		HasPendingRepair:  ov.HasPendingRepair,
	}
}

func toRentalResponse(rt *domain.Rental) rentalResponse {
	return rentalResponse{
		ID:              rt.ID,
		EquipmentID:     rt.EquipmentID,
		Quantity:        rt.Quantity,
		StartDate:       rt.StartDate,
		EndDate:         rt.EndDate,
		UserName:        rt.UserName,
		UserDepartment:  rt.UserDepartment,
		UserPosition:    rt.UserPosition,
		Status:          string(rt.Status),
		Returned:        rt.Returned,
		ReturnedDate:    rt.ReturnedDate,
		Damaged:         rt.Damaged,
		DamageNote:      rt.DamageNote,
		RepairRequested: rt.RepairRequested,
		Repaired:        rt.Repaired,
		RequestDate:     rt.RequestDate,
	}
}

func toRentalResponses(rentals []domain.Rental) []rentalResponse {
	out := make([]rentalResponse, 0, len(rentals))
	for i := range rentals {
		out = append(out, toRentalResponse(&rentals[i]))
	}
	return out
}

func toAvailabilityResponse(a *utils.Availability) map[string]int32 {
	return map[string]int32{
		"rented":             a.Rented,
		"damaged_unrepaired": a.DamagedUnrepaired,
		"available":          a.Available,
	}
}

package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/service"
)

// RentalHandler serves rental submission, the admin decision endpoints and
// the user self-service password check.
type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

// RegisterRentalRoutes registers the rental endpoints on the router.
func RegisterRentalRoutes(router *mux.Router, svc service.RentalService) {
	h := NewRentalHandler(svc)
	router.HandleFunc("/rentals", h.HandleSubmit).Methods("POST")
	router.HandleFunc("/rentals", h.HandleList).Methods("GET")
	router.HandleFunc("/rentals/{id}", h.HandleGet).Methods("GET")
	router.HandleFunc("/rentals/{id}/approve", h.HandleApprove).Methods("POST")
	router.HandleFunc("/rentals/{id}/reject", h.HandleReject).Methods("POST")
	router.HandleFunc("/rentals/{id}/return", h.HandleReturn).Methods("POST")
	router.HandleFunc("/rentals/{id}/damage", h.HandleDamage).Methods("POST")
	router.HandleFunc("/rentals/{id}/repair-request", h.HandleRepairRequest).Methods("POST")
	router.HandleFunc("/rentals/{id}/verify-password", h.HandleVerifyPassword).Methods("POST")
	router.HandleFunc("/equipment/{id}/rentals", h.HandleListByEquipment).Methods("GET")
	router.HandleFunc("/equipment/{id}/repairs/complete", h.HandleCompleteRepairs).Methods("POST")
}

func (h *RentalHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rental, err := h.svc.Submit(r.Context(), service.RentalInput{
		EquipmentID:    req.EquipmentID,
		Quantity:       req.Quantity,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		UserName:       req.UserName,
		UserDepartment: req.UserDepartment,
		UserPosition:   req.UserPosition,
		Password:       req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRentalResponse(rental))
}

func (h *RentalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals))
}

func (h *RentalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rental, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *RentalHandler) HandleListByEquipment(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.ListByEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals))
}

func (h *RentalHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Approve)
}

func (h *RentalHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Reject)
}

func (h *RentalHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.MarkReturned)
}

func (h *RentalHandler) HandleRepairRequest(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.RequestRepair)
}

// transition runs a single-rental status operation and writes the updated
// rental back.
func (h *RentalHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*domain.Rental, error)) {
	rental, err := op(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *RentalHandler) HandleDamage(w http.ResponseWriter, r *http.Request) {
	var req damageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rental, err := h.svc.MarkDamaged(r.Context(), mux.Vars(r)["id"], req.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *RentalHandler) HandleVerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req verifyPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	valid, err := h.svc.VerifyPassword(r.Context(), mux.Vars(r)["id"], req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verifyPasswordResponse{Valid: valid})
}

func (h *RentalHandler) HandleCompleteRepairs(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CompleteRepairs(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, completeRepairsResponse{Repaired: count})
}

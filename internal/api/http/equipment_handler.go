package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentaldesk-backend/internal/service"
)

// EquipmentHandler serves the admin-side equipment endpoints.
type EquipmentHandler struct {
	svc service.EquipmentService
}

func NewEquipmentHandler(svc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

// RegisterEquipmentRoutes registers the equipment endpoints on the router.
func RegisterEquipmentRoutes(router *mux.Router, svc service.EquipmentService) {
	h := NewEquipmentHandler(svc)
	router.HandleFunc("/equipment", h.HandleCreate).Methods("POST")
	router.HandleFunc("/equipment", h.HandleList).Methods("GET")
	router.HandleFunc("/equipment/{id}", h.HandleUpdate).Methods("PUT")
	router.HandleFunc("/equipment/{id}", h.HandleGet).Methods("GET")
	router.HandleFunc("/equipment/{id}", h.HandleDelete).Methods("DELETE")
	router.HandleFunc("/equipment/{id}/availability", h.HandleAvailability).Methods("GET")
}

func (h *EquipmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, "")
}

func (h *EquipmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, mux.Vars(r)["id"])
}

func (h *EquipmentHandler) upsert(w http.ResponseWriter, r *http.Request, editingID string) {
	var req equipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	eq, err := h.svc.Upsert(r.Context(), service.EquipmentInput{
		Name:       req.Name,
		Quantity:   req.Quantity,
		PriceCents: req.PriceCents,
		Note:       req.Note,
	}, editingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	status := http.StatusOK
	if editingID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, toEquipmentResponse(eq))
}

func (h *EquipmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.svc.ListOverview(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]equipmentOverviewResponse, 0, len(overviews))
	for i := range overviews {
		out = append(out, toEquipmentOverviewResponse(&overviews[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *EquipmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	eq, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEquipmentResponse(eq))
}

func (h *EquipmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EquipmentHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.svc.Availability(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAvailabilityResponse(availability))
}

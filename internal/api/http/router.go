// Package http exposes the service layer to the browser UI as a JSON API.
package http

import (
	"github.com/gorilla/mux"

	"rentaldesk-backend/internal/service"
)

// NewRouter builds the API router with all routes registered.
func NewRouter(equipmentSvc service.EquipmentService, rentalSvc service.RentalService) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	RegisterEquipmentRoutes(api, equipmentSvc)
	RegisterRentalRoutes(api, rentalSvc)
	return router
}

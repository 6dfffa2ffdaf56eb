package jobs

import (
	"context"

	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/utils"
)

// ReportOverdueRentals logs approved, unreturned rentals past their end date.
// The job only reports; the admin stays the sole writer of rental state.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()

		overdue, err := jr.rentalSvc.ListOverdue(ctx, utils.Today())
		if err != nil {
			logger.Error("Failed to scan for overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue rental scan finished", "count", len(overdue))
		for _, rt := range overdue {
			logger.Warn("Rental past its end date",
				"rental_id", rt.ID,
				"equipment_id", rt.EquipmentID,
				"user_name", rt.UserName,
				"end_date", rt.EndDate)
		}
	})
}

// ReportOverCommittedEquipment logs equipment whose available count went
// negative, meaning the owned quantity was edited below the committed
// rentals. Such equipment must not be offered for further rentals.
func (jr *JobRunner) ReportOverCommittedEquipment() {
	jr.runWithRecovery("ReportOverCommittedEquipment", func() {
		ctx := context.Background()

		overviews, err := jr.equipmentSvc.ListOverview(ctx)
		if err != nil {
			logger.Error("Failed to compute equipment availability", "error", err)
			return
		}

		count := 0
		for _, ov := range overviews {
			if ov.Availability.Available < 0 {
				count++
				logger.Warn("Equipment is over-committed",
					"equipment_id", ov.Equipment.ID,
					"name", ov.Equipment.Name,
					"quantity", ov.Equipment.Quantity,
					"available", ov.Availability.Available)
			}
		}
		logger.Info("Over-committed equipment scan finished", "count", count)
	})
}

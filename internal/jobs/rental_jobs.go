package jobs

import (
	"context"
	"time"

	"rentmate-backend/internal/logger"
)

// AutoRejectPendingRentals declines every pending rental whose owner did not
// respond within the response window. The sweep itself is a pure function of
// the clock; this job just feeds it time.Now().
func (jr *JobRunner) AutoRejectPendingRentals() {
	jr.runWithRecovery("AutoRejectPendingRentals", func() {
		ctx := context.Background()

		result, err := jr.rentalSvc.SweepExpiredPendingRentals(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Auto-reject sweep failed", "error", err)
			return
		}
		if result.Declined > 0 {
			logger.Info("Auto-rejected pending rentals", "count", result.Declined)
		}
	})
}

package jobs

import (
	"context"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/logger"
)

// SendPendingApprovalsReminder emails every NGO admin a count of donations
// and requests still waiting for review. Admins with an empty queue are
// skipped.
func (jr *JobRunner) SendPendingApprovalsReminder() {
	jr.runWithRecovery("SendPendingApprovalsReminder", func() {
		ctx := context.Background()

		query := `
			SELECT
				(SELECT COUNT(*) FROM donations WHERE status = 'pending'),
				(SELECT COUNT(*) FROM requests WHERE status = 'pending')
		`

		var pendingDonations, pendingRequests int
		if err := jr.db.QueryRowContext(ctx, query).Scan(&pendingDonations, &pendingRequests); err != nil {
			logger.Error("Failed to count pending approvals", "error", err)
			return
		}

		if pendingDonations == 0 && pendingRequests == 0 {
			logger.Info("No pending approvals, skipping reminder")
			return
		}

		admins, err := jr.store.Users().ListByRole(ctx, domain.RoleNGOAdmin)
		if err != nil {
			logger.Error("Failed to list NGO admins", "error", err)
			return
		}

		count := 0
		for _, admin := range admins {
			if err := jr.emailSvc.SendPendingApprovalsReminder(ctx, admin.Email, pendingDonations, pendingRequests); err != nil {
				logger.Error("Failed to send pending approvals reminder",
					"admin_id", admin.ID,
					"email", admin.Email,
					"error", err)
				continue
			}
			count++
		}

		logger.Info("Pending approvals reminders sent",
			"count", count,
			"pending_donations", pendingDonations,
			"pending_requests", pendingRequests)
	})
}

// SendWeeklyDigest emails every NGO admin the platform statistics summary.
func (jr *JobRunner) SendWeeklyDigest() {
	jr.runWithRecovery("SendWeeklyDigest", func() {
		ctx := context.Background()

		stats, err := jr.store.Stats().GetStatistics(ctx)
		if err != nil {
			logger.Error("Failed to load platform statistics", "error", err)
			return
		}

		admins, err := jr.store.Users().ListByRole(ctx, domain.RoleNGOAdmin)
		if err != nil {
			logger.Error("Failed to list NGO admins", "error", err)
			return
		}

		count := 0
		for _, admin := range admins {
			if err := jr.emailSvc.SendWeeklyDigest(ctx, admin.Email, stats); err != nil {
				logger.Error("Failed to send weekly digest",
					"admin_id", admin.ID,
					"email", admin.Email,
					"error", err)
				continue
			}
			count++
		}

		logger.Info("Weekly digests sent", "count", count)
	})
}

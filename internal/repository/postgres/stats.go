package postgres

import (
	"context"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"
)

type statsRepository struct {
	q DBTX
}

func NewStatsRepository(q DBTX) repository.StatsRepository {
	return &statsRepository{q: q}
}

// GetStatistics computes the dashboard aggregates in one round trip.
// "Families helped" counts requests whose need was fulfilled; "active
// donors" counts donors with at least one non-rejected donation.
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	query := `SELECT
	    (SELECT count(*) FROM donations),
	    (SELECT count(*) FROM requests),
	    (SELECT count(*) FROM matches WHERE status = $1),
	    (SELECT count(DISTINCT donor_id) FROM donations WHERE status <> $2),
	    (SELECT count(*) FROM requests WHERE status = $3)`
	stats := &domain.Statistics{}
	err := r.q.QueryRowContext(ctx, query,
		domain.MatchStatusCompleted, domain.DonationStatusRejected, domain.RequestStatusFulfilled).
		Scan(&stats.TotalDonations, &stats.TotalRequests, &stats.SuccessfulMatches,
			&stats.ActiveDonors, &stats.FamiliesHelped)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

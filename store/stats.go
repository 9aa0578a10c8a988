// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/baydre/alx-polly/models"
)

// Stats computes the dashboard summary for one owner's polls. It reads
// the poll table directly on every call - nothing is cached, so the
// numbers always reflect the store at call time.
func Stats(db *sql.DB, ownerID string) (models.OwnerStats, error) {
	var stats models.OwnerStats
	err := db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(total_votes), 0),
		       COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0)
		FROM poll
		WHERE created_by = $1
	`, ownerID).Scan(&stats.TotalPolls, &stats.TotalVotes, &stats.ActivePolls)
	if err != nil {
		return models.OwnerStats{}, fmt.Errorf("failed to query stats: %w", err)
	}

	if stats.TotalPolls > 0 {
		// round half-up
		stats.AverageVotes = int(math.Round(float64(stats.TotalVotes) / float64(stats.TotalPolls)))
	}
	return stats, nil
}

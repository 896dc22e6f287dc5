package repository

import (
	"context"
	"fmt"
)

// GetMetrics returns KPI aggregates over every row of the table.
func (r *Repository) GetMetrics(ctx context.Context) (Metrics, error) {
	var m Metrics
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE assigned_to IS NULL),
			COALESCE(AVG(score), 0)::float8,
			COALESCE(SUM(estimated_value), 0)::float8
		FROM %s
	`, r.table.Name)).Scan(&m.Total, &m.Unassigned, &m.AverageScore, &m.EstimatedValue)
	if err != nil {
		return Metrics{}, err
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT status, COUNT(*)
		FROM %s
		GROUP BY status
		ORDER BY status
	`, r.table.Name))
	if err != nil {
		return Metrics{}, err
	}
	defer rows.Close()

	m.ByStatus = make([]StatusCount, 0)
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return Metrics{}, err
		}
		m.ByStatus = append(m.ByStatus, sc)
	}
	return m, rows.Err()
}

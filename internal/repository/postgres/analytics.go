package postgres

import (
	"context"
	"fmt"

	"leadflow-crm/internal/entities"
)

const (
	// Only statuses present in data are emitted; absent means zero.
	statusBreakdownQuery = `
SELECT status, count(*)
FROM leads
GROUP BY status
ORDER BY status`

	sourceBreakdownQuery = `
SELECT source, count(*)
FROM leads
GROUP BY source
ORDER BY count(*) DESC, source`

	// The 12 most recent (year, month) groups that have data, returned
	// chronologically ascending.
	monthlyTrendQuery = `
SELECT year, month, count
FROM (
    SELECT EXTRACT(YEAR FROM created_at)::int  AS year,
           EXTRACT(MONTH FROM created_at)::int AS month,
           count(*)                            AS count
    FROM leads
    GROUP BY 1, 2
    ORDER BY 1 DESC, 2 DESC
    LIMIT 12
) recent
ORDER BY year, month`
)

// Analytics computes the status, source and monthly breakdowns.
func (p *Postgres) Analytics(ctx context.Context) (entities.AnalyticsSnapshot, error) {
	snap := entities.AnalyticsSnapshot{
		StatusBreakdown: make([]entities.StatusCount, 0),
		SourceBreakdown: make([]entities.SourceCount, 0),
		MonthlyTrend:    make([]entities.MonthlyCount, 0),
	}

	rows, err := p.db.Query(ctx, statusBreakdownQuery)
	if err != nil {
		return snap, fmt.Errorf("status breakdown: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return snap, fmt.Errorf("scan status breakdown: %w", err)
		}
		snap.StatusBreakdown = append(snap.StatusBreakdown, entities.StatusCount{
			Status: entities.Status(status),
			Count:  count,
		})
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("iterate status breakdown: %w", err)
	}

	srcRows, err := p.db.Query(ctx, sourceBreakdownQuery)
	if err != nil {
		return snap, fmt.Errorf("source breakdown: %w", err)
	}
	defer srcRows.Close()
	for srcRows.Next() {
		var (
			source string
			count  int64
		)
		if err := srcRows.Scan(&source, &count); err != nil {
			return snap, fmt.Errorf("scan source breakdown: %w", err)
		}
		snap.SourceBreakdown = append(snap.SourceBreakdown, entities.SourceCount{
			Source: entities.Source(source),
			Count:  count,
		})
	}
	if err := srcRows.Err(); err != nil {
		return snap, fmt.Errorf("iterate source breakdown: %w", err)
	}

	monthRows, err := p.db.Query(ctx, monthlyTrendQuery)
	if err != nil {
		return snap, fmt.Errorf("monthly trend: %w", err)
	}
	defer monthRows.Close()
	for monthRows.Next() {
		var mc entities.MonthlyCount
		if err := monthRows.Scan(&mc.Year, &mc.Month, &mc.Count); err != nil {
			return snap, fmt.Errorf("scan monthly trend: %w", err)
		}
		snap.MonthlyTrend = append(snap.MonthlyTrend, mc)
	}
	if err := monthRows.Err(); err != nil {
		return snap, fmt.Errorf("iterate monthly trend: %w", err)
	}

	return snap, nil
}

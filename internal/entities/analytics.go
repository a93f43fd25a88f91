// Package entities contains core business entities.
package entities

// StatusCount is one group of the status breakdown. Statuses with no leads
// are not emitted.
type StatusCount struct {
	Status Status
	Count  int64
}

// SourceCount is one group of the source breakdown, ordered by count
// descending in the snapshot.
type SourceCount struct {
	Source Source
	Count  int64
}

// MonthlyCount is the lead volume of one calendar month that has data.
type MonthlyCount struct {
	Year  int
	Month int
	Count int64
}

// AnalyticsSnapshot aggregates the reporting breakdowns served by /analytics.
type AnalyticsSnapshot struct {
	StatusBreakdown []StatusCount
	SourceBreakdown []SourceCount
	MonthlyTrend    []MonthlyCount
}

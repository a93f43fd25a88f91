// Package domain contains application usecases orchestrating business logic by analytics.
package domain

import (
	"context"

	"leadflow-crm/internal/entities"
)

// Analytics returns the reporting snapshot, read through the optional cache.
func (u *Usecase) Analytics(ctx context.Context) (entities.AnalyticsSnapshot, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if snap, ok := u.analytics.Get(ctx); ok {
		return snap, nil
	}

	snap, err := u.repo.Analytics(ctx)
	if err != nil {
		return entities.AnalyticsSnapshot{}, err
	}

	u.analytics.Set(ctx, snap)
	return snap, nil
}

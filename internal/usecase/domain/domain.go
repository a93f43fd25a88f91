// Package domain contains application usecases orchestrating business logic.
package domain

import (
	"context"
	"time"

	"leadflow-crm/internal/auth"
	"leadflow-crm/internal/cache"
	"leadflow-crm/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx        context.Context
	log        *zap.SugaredLogger
	repo       repository.Repository
	tokens     *auth.TokenManager
	analytics  *cache.Analytics
	timeout    time.Duration
	bcryptCost int
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	tokens *auth.TokenManager,
	analyticsCache *cache.Analytics,
	timeout time.Duration,
	bcryptCost int,
) *Usecase {
	return &Usecase{
		ctx:        ctx,
		log:        log,
		repo:       repo,
		tokens:     tokens,
		analytics:  analyticsCache,
		timeout:    timeout,
		bcryptCost: bcryptCost,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

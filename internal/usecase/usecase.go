package usecase

import (
	"context"
	"time"

	"leadflow-crm/internal/auth"
	"leadflow-crm/internal/cache"
	"leadflow-crm/internal/repository"
	"leadflow-crm/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	LeadUsecaseInterface
	AuthUsecaseInterface
	AnalyticsUsecaseInterface
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
) InterfaceUsecase {
	return domain.New(log, ctx, repo, tokens, analyticsCache, timeout, bcryptCost)
}

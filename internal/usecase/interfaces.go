package usecase

import (
	"context"

	"leadflow-crm/internal/entities"
)

// LeadUsecaseInterface abstracts lead operations for the delivery layer.
type LeadUsecaseInterface interface {
	CreateLead(ctx context.Context, lead entities.Lead) (*entities.Lead, error)
	ListLeads(ctx context.Context, filter entities.LeadFilter) (*entities.LeadPage, error)
	Lead(ctx context.Context, id string) (*entities.Lead, error)
	UpdateLead(ctx context.Context, id string, patch entities.LeadUpdate) (*entities.Lead, error)
	DeleteLead(ctx context.Context, id string) error
	AddNote(ctx context.Context, leadID, text string) (*entities.Note, error)
	RemoveNote(ctx context.Context, leadID, noteID string) error
}

// AuthUsecaseInterface abstracts account operations.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, creds entities.Credentials) (*entities.User, error)
	Login(ctx context.Context, creds entities.Credentials) (string, *entities.User, error)
	Me(ctx context.Context, userID string) (*entities.User, error)
}

// AnalyticsUsecaseInterface abstracts reporting operations.
type AnalyticsUsecaseInterface interface {
	Analytics(ctx context.Context) (entities.AnalyticsSnapshot, error)
}

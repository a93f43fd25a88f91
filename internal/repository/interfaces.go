// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"leadflow-crm/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user account operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
}

// LeadInterface exposes lead CRUD and listing.
type LeadInterface interface {
	CreateLead(ctx context.Context, lead entities.Lead) (*entities.Lead, error)
	ListLeads(ctx context.Context, filter entities.LeadFilter) (*entities.LeadPage, error)
	GetLead(ctx context.Context, id string) (*entities.Lead, error)
	UpdateLead(ctx context.Context, id string, patch entities.LeadUpdate) (*entities.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

// NoteInterface exposes the note sub-resource of a lead.
type NoteInterface interface {
	AddNote(ctx context.Context, leadID string, note entities.Note) (*entities.Note, error)
	RemoveNote(ctx context.Context, leadID, noteID string) error
}

// AnalyticsInterface exposes aggregated reporting operations.
type AnalyticsInterface interface {
	Analytics(ctx context.Context) (entities.AnalyticsSnapshot, error)
}

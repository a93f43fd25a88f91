// Package domain contains application usecases orchestrating business logic by lead.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"leadflow-crm/internal/entities"
)

// CreateLead normalizes, validates and persists a new lead. Omitted or
// unknown source/status fall back to Website/new.
func (u *Usecase) CreateLead(ctx context.Context, lead entities.Lead) (*entities.Lead, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	lead.ID = uuid.NewString()
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
	lead.Phone = strings.TrimSpace(lead.Phone)
	lead.Company = strings.TrimSpace(lead.Company)
	if !lead.Source.Valid() {
		lead.Source = entities.SourceWebsite
	}
	if !lead.Status.Valid() {
		lead.Status = entities.StatusNew
	}

	if err := lead.Validate(); err != nil {
		u.log.Errorw("failed to create lead", "error", err)
		return nil, fmt.Errorf("%w: %s", entities.ErrInvalidArgument, err)
	}

	return u.repo.CreateLead(ctx, lead)
}

// ListLeads returns one filtered page plus the global stats summary.
func (u *Usecase) ListLeads(ctx context.Context, filter entities.LeadFilter) (*entities.LeadPage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListLeads(ctx, filter.Normalized())
}

// Lead returns a single lead with its notes.
func (u *Usecase) Lead(ctx context.Context, id string) (*entities.Lead, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	leadID, err := parseID(id)
	if err != nil {
		return nil, entities.ErrLeadNotFound
	}
	return u.repo.GetLead(ctx, leadID)
}

// UpdateLead applies a partial patch over the mutable lead fields.
func (u *Usecase) UpdateLead(ctx context.Context, id string, patch entities.LeadUpdate) (*entities.Lead, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	leadID, err := parseID(id)
	if err != nil {
		return nil, entities.ErrLeadNotFound
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if patch.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &normalized
	}
	if patch.Phone != nil {
		trimmed := strings.TrimSpace(*patch.Phone)
		patch.Phone = &trimmed
	}
	if patch.Company != nil {
		trimmed := strings.TrimSpace(*patch.Company)
		patch.Company = &trimmed
	}

	if err := patch.Validate(); err != nil {
		u.log.Errorw("failed to update lead", "error", err, "lead_id", leadID)
		return nil, fmt.Errorf("%w: %s", entities.ErrInvalidArgument, err)
	}

	return u.repo.UpdateLead(ctx, leadID, patch)
}

// DeleteLead removes the lead and all of its notes. Role enforcement happens
// at the transport layer.
func (u *Usecase) DeleteLead(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	leadID, err := parseID(id)
	if err != nil {
		return entities.ErrLeadNotFound
	}
	return u.repo.DeleteLead(ctx, leadID)
}

// parseID canonicalizes an opaque lead/note id. Malformed ids behave like
// ids that are simply not in the collection.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

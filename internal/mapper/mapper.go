// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"leadflow-crm/internal/api"
	"leadflow-crm/internal/entities"
)

// ToAPINote maps entities.Note to transport model.
func ToAPINote(n entities.Note) api.Note {
	return api.Note{
		ID:        n.ID,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
	}
}

// ToAPILead maps entities.Lead to transport model.
func ToAPILead(l entities.Lead) api.Lead {
	notes := make([]api.Note, 0, len(l.Notes))
	for _, n := range l.Notes {
		notes = append(notes, ToAPINote(n))
	}

	return api.Lead{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Company:   l.Company,
		Source:    string(l.Source),
		Status:    string(l.Status),
		Notes:     notes,
		CreatedBy: l.CreatedBy,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// ToAPILeadPage maps a lead page with its pagination and stats blocks.
func ToAPILeadPage(p entities.LeadPage) api.ListLeadsResponse {
	leads := make([]api.Lead, 0, len(p.Leads))
	for _, l := range p.Leads {
		leads = append(leads, ToAPILead(l))
	}

	return api.ListLeadsResponse{
		Leads: leads,
		Pagination: api.Pagination{
			Page:  p.Pagination.Page,
			Limit: p.Pagination.Limit,
			Total: p.Pagination.Total,
			Pages: p.Pagination.Pages,
		},
		Stats: api.LeadStats{
			Total:     p.Stats.Total,
			New:       p.Stats.New,
			Contacted: p.Stats.Contacted,
			Converted: p.Stats.Converted,
		},
	}
}

// ToAPIUser maps entities.User to its public profile.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}

// ToAPIAnalytics maps the analytics snapshot to transport model.
func ToAPIAnalytics(s entities.AnalyticsSnapshot) api.AnalyticsResponse {
	out := api.AnalyticsResponse{
		StatusBreakdown: make([]api.StatusCount, 0, len(s.StatusBreakdown)),
		SourceBreakdown: make([]api.SourceCount, 0, len(s.SourceBreakdown)),
		MonthlyTrend:    make([]api.MonthlyCount, 0, len(s.MonthlyTrend)),
	}
	for _, sc := range s.StatusBreakdown {
		out.StatusBreakdown = append(out.StatusBreakdown, api.StatusCount{
			Status: string(sc.Status),
			Count:  sc.Count,
		})
	}
	for _, sc := range s.SourceBreakdown {
		out.SourceBreakdown = append(out.SourceBreakdown, api.SourceCount{
			Source: string(sc.Source),
			Count:  sc.Count,
		})
	}
	for _, mc := range s.MonthlyTrend {
		out.MonthlyTrend = append(out.MonthlyTrend, api.MonthlyCount{
			Year:  mc.Year,
			Month: mc.Month,
			Count: mc.Count,
		})
	}
	return out
}

// FromCreateLeadRequest builds an entities.Lead from the create body.
func FromCreateLeadRequest(src api.CreateLeadRequest, createdBy string) entities.Lead {
	return entities.Lead{
		Name:      src.Name,
		Email:     src.Email,
		Phone:     src.Phone,
		Company:   src.Company,
		Source:    entities.Source(src.Source),
		Status:    entities.Status(src.Status),
		CreatedBy: createdBy,
	}
}

// FromUpdateLeadRequest builds a partial patch from the update body.
func FromUpdateLeadRequest(src api.UpdateLeadRequest) entities.LeadUpdate {
	patch := entities.LeadUpdate{
		Name:    src.Name,
		Email:   src.Email,
		Phone:   src.Phone,
		Company: src.Company,
	}
	if src.Source != nil {
		s := entities.Source(*src.Source)
		patch.Source = &s
	}
	if src.Status != nil {
		s := entities.Status(*src.Status)
		patch.Status = &s
	}
	return patch
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"leadflow-crm/internal/entities"
)

const (
	insertLeadQuery = `
INSERT INTO leads (id, name, email, phone, company, source, status, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at, updated_at`

	selectLeadQuery = `
SELECT id, name, email, phone, company, source, status, created_by, created_at, updated_at
FROM leads
WHERE id = $1`

	leadColumns = "id, name, email, phone, company, source, status, created_by, created_at, updated_at"

	leadStatsQuery = `
SELECT count(*),
       count(*) FILTER (WHERE status = 'new'),
       count(*) FILTER (WHERE status = 'contacted'),
       count(*) FILTER (WHERE status = 'converted')
FROM leads`

	deleteLeadQuery = `DELETE FROM leads WHERE id = $1`

	selectNotesForLeadsQuery = `
SELECT lead_id, id, body, created_at
FROM notes
WHERE lead_id = ANY($1::uuid[])
ORDER BY lead_id, seq`
)

// CreateLead inserts a lead and returns it with storage timestamps.
func (p *Postgres) CreateLead(ctx context.Context, lead entities.Lead) (*entities.Lead, error) {
	var createdBy any
	if lead.CreatedBy != "" {
		createdBy = lead.CreatedBy
	}

	err := p.db.QueryRow(ctx, insertLeadQuery,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Company,
		string(lead.Source), string(lead.Status), createdBy,
	).Scan(&lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		p.log.Errorw("failed to insert lead", "error", err, "lead_id", lead.ID)
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	lead.Notes = make([]entities.Note, 0)
	p.log.Infow("lead created", "lead_id", lead.ID, "source", lead.Source)
	return &lead, nil
}

// GetLead fetches a lead with its notes in insertion order.
func (p *Postgres) GetLead(ctx context.Context, id string) (*entities.Lead, error) {
	lead, err := p.scanLead(p.db.QueryRow(ctx, selectLeadQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrLeadNotFound
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}

	if err := p.attachNotes(ctx, []*entities.Lead{lead}); err != nil {
		return nil, err
	}
	return lead, nil
}

// ListLeads applies the filter and returns one page plus pagination metadata
// and the global unfiltered stats summary.
func (p *Postgres) ListLeads(ctx context.Context, filter entities.LeadFilter) (*entities.LeadPage, error) {
	q := buildLeadQuery(filter)
	norm := filter.Normalized()

	var total int64
	countSQL := fmt.Sprintf("SELECT count(*) FROM leads %s", q.where)
	if err := p.db.QueryRow(ctx, countSQL, q.args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}

	pageSQL := fmt.Sprintf("SELECT %s FROM leads %s %s LIMIT %d OFFSET %d",
		leadColumns, q.where, q.orderBy, q.limit, q.offset)
	rows, err := p.db.Query(ctx, pageSQL, q.args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]*entities.Lead, 0, q.limit)
	for rows.Next() {
		lead, err := p.scanLead(rows)
		if err != nil {
			p.log.Errorw("failed to scan lead row", "error", err)
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	if err := p.attachNotes(ctx, leads); err != nil {
		return nil, err
	}

	var stats entities.LeadStats
	err = p.db.QueryRow(ctx, leadStatsQuery).
		Scan(&stats.Total, &stats.New, &stats.Contacted, &stats.Converted)
	if err != nil {
		return nil, fmt.Errorf("lead stats: %w", err)
	}

	page := &entities.LeadPage{
		Leads: make([]entities.Lead, 0, len(leads)),
		Pagination: entities.Pagination{
			Page:  norm.Page,
			Limit: norm.Limit,
			Total: total,
			Pages: (total + int64(norm.Limit) - 1) / int64(norm.Limit),
		},
		Stats: stats,
	}
	for _, l := range leads {
		page.Leads = append(page.Leads, *l)
	}
	return page, nil
}

// UpdateLead applies a partial patch and returns the updated lead. An empty
// patch reads the lead back unchanged.
func (p *Postgres) UpdateLead(ctx context.Context, id string, patch entities.LeadUpdate) (*entities.Lead, error) {
	if patch.Empty() {
		return p.GetLead(ctx, id)
	}

	set := make([]string, 0, 7)
	args := make([]any, 0, 7)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Company != nil {
		add("company", *patch.Company)
	}
	if patch.Source != nil {
		add("source", string(*patch.Source))
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}

	args = append(args, id)
	sqlText := fmt.Sprintf("UPDATE leads SET %s, updated_at = now() WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), leadColumns)

	lead, err := p.scanLead(p.db.QueryRow(ctx, sqlText, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrLeadNotFound
		}
		p.log.Errorw("failed to update lead", "error", err, "lead_id", id)
		return nil, fmt.Errorf("update lead: %w", err)
	}

	if err := p.attachNotes(ctx, []*entities.Lead{lead}); err != nil {
		return nil, err
	}
	p.log.Infow("lead updated", "lead_id", id)
	return lead, nil
}

// DeleteLead removes a lead; its notes go with it via the cascade.
func (p *Postgres) DeleteLead(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteLeadQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete lead", "error", err, "lead_id", id)
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrLeadNotFound
	}

	p.log.Infow("lead deleted", "lead_id", id)
	return nil
}

func (p *Postgres) scanLead(row pgx.Row) (*entities.Lead, error) {
	var (
		lead      entities.Lead
		source    string
		status    string
		createdBy *string
	)
	err := row.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Company,
		&source, &status, &createdBy, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return nil, err
	}
	lead.Source = entities.Source(source)
	lead.Status = entities.Status(status)
	if createdBy != nil {
		lead.CreatedBy = *createdBy
	}
	lead.Notes = make([]entities.Note, 0)
	return &lead, nil
}

// attachNotes loads notes for the given leads in one round trip.
func (p *Postgres) attachNotes(ctx context.Context, leads []*entities.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	ids := make([]string, 0, len(leads))
	byID := make(map[string]*entities.Lead, len(leads))
	for _, l := range leads {
		ids = append(ids, l.ID)
		byID[l.ID] = l
	}

	rows, err := p.db.Query(ctx, selectNotesForLeadsQuery, ids)
	if err != nil {
		return fmt.Errorf("get notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			leadID string
			note   entities.Note
		)
		if err := rows.Scan(&leadID, &note.ID, &note.Text, &note.CreatedAt); err != nil {
			return fmt.Errorf("scan note: %w", err)
		}
		if lead, ok := byID[leadID]; ok {
			lead.Notes = append(lead.Notes, note)
		}
	}
	return rows.Err()
}

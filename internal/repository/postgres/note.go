package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"leadflow-crm/internal/entities"
)

const (
	// A single INSERT is the atomic append: two concurrent appends to the
	// same lead both land, in seq order.
	insertNoteQuery = `
INSERT INTO notes (id, lead_id, body)
VALUES ($1, $2, $3)
RETURNING created_at`

	deleteNoteQuery = `DELETE FROM notes WHERE id = $1 AND lead_id = $2`

	leadExistsQuery = `SELECT EXISTS (SELECT 1 FROM leads WHERE id = $1)`
)

const fkViolationCode = "23503"

// AddNote appends a note to the end of the lead's list.
func (p *Postgres) AddNote(ctx context.Context, leadID string, note entities.Note) (*entities.Note, error) {
	err := p.db.QueryRow(ctx, insertNoteQuery, note.ID, leadID, note.Text).Scan(&note.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return nil, entities.ErrLeadNotFound
		}
		p.log.Errorw("failed to insert note", "error", err, "lead_id", leadID)
		return nil, fmt.Errorf("insert note: %w", err)
	}

	p.log.Infow("note added", "lead_id", leadID, "note_id", note.ID)
	return &note, nil
}

// RemoveNote deletes the note from the lead's list. Removing a note id that
// is not in the list succeeds as long as the lead exists.
func (p *Postgres) RemoveNote(ctx context.Context, leadID, noteID string) error {
	tag, err := p.db.Exec(ctx, deleteNoteQuery, noteID, leadID)
	if err != nil {
		p.log.Errorw("failed to delete note", "error", err, "lead_id", leadID, "note_id", noteID)
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() > 0 {
		p.log.Infow("note removed", "lead_id", leadID, "note_id", noteID)
		return nil
	}

	var exists bool
	if err := p.db.QueryRow(ctx, leadExistsQuery, leadID).Scan(&exists); err != nil {
		return fmt.Errorf("check lead: %w", err)
	}
	if !exists {
		return entities.ErrLeadNotFound
	}
	return nil
}

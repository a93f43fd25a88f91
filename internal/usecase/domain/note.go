// Package domain contains application usecases orchestrating business logic by note.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"leadflow-crm/internal/entities"
)

const maxNoteLength = 2000

// AddNote appends a trimmed note to the end of the lead's list.
func (u *Usecase) AddNote(ctx context.Context, leadID, text string) (*entities.Note, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	id, err := parseID(leadID)
	if err != nil {
		return nil, entities.ErrLeadNotFound
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: note text is required", entities.ErrInvalidArgument)
	}
	if len(text) > maxNoteLength {
		return nil, fmt.Errorf("%w: note text exceeds %d characters", entities.ErrInvalidArgument, maxNoteLength)
	}

	note := entities.Note{ID: uuid.NewString(), Text: text}
	return u.repo.AddNote(ctx, id, note)
}

// RemoveNote drops the note from the lead's list. A note id that is not in
// the list is not an error; only a missing lead is.
func (u *Usecase) RemoveNote(ctx context.Context, leadID, noteID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	id, err := parseID(leadID)
	if err != nil {
		return entities.ErrLeadNotFound
	}

	parsedNote, err := parseID(noteID)
	if err != nil {
		// Malformed note ids match nothing; the repo call still verifies
		// the lead exists. Generated ids are never the nil uuid.
		parsedNote = uuid.Nil.String()
	}

	return u.repo.RemoveNote(ctx, id, parsedNote)
}

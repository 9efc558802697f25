package history

import (
	"context"
	"time"

	"notehub/internal/environment"
	"notehub/internal/logging"
	"notehub/internal/models"
)

// Recorder maintains the per-(user, note) visit markers. It runs after the
// response-producing action has been decided; its failures are logged and
// never surfaced to the caller.
type Recorder struct {
	*environment.Env
}

// Update upserts the history entry for the given user and note. The entry is
// keyed by the note's external token, so an aliased note keeps a single
// entry across alias and short-id visits. A zero time defaults to now.
func (r *Recorder) Update(ctx context.Context, userID uint, note *models.Note, document string, at time.Time) {
	if at.IsZero() {
		at = time.Now()
	}
	entry := models.HistoryEntry{
		UserID:    userID,
		NoteRef:   note.ExternalToken(),
		Title:     models.DecodeTitle(note.Title),
		Content:   document,
		VisitedAt: at,
	}
	if err := r.UpsertHistoryEntry(ctx, &entry); err != nil {
		r.LogErrorf(logging.GetLogTypeHistory(), "updating history for note %s failed: %v", entry.NoteRef, err)
		return
	}
	r.LogInfo(logging.GetLogTypeHistory(), "history updated")
}

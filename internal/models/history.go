package models

import "time"

// HistoryEntry records the last visit or edit of a note by a user. A user
// has at most one entry per note; each view refreshes it in place.
type HistoryEntry struct {
	Model
	UserID    uint      `gorm:"not null;uniqueIndex:idx_history_user_note" json:"-"`
	NoteRef   string    `gorm:"not null;uniqueIndex:idx_history_user_note" json:"id"`
	Title     string    `json:"text"`
	Content   string    `json:"-"`
	VisitedAt time.Time `gorm:"not null" json:"time"`
}

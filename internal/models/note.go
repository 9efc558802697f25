package models

import (
	"strings"
	"time"
)

// NotePermission governs view access to a note, independent of edit access.
type NotePermission string

const (
	PermissionFreely    NotePermission = "freely"
	PermissionEditable  NotePermission = "editable"
	PermissionLimited   NotePermission = "limited"
	PermissionLocked    NotePermission = "locked"
	PermissionProtected NotePermission = "protected"
	PermissionPrivate   NotePermission = "private"
)

// Note is a single published document. Either the human-chosen Alias or the
// derived ShortID is the note's canonical external token; when an alias is
// set it always takes precedence in URLs.
type Note struct {
	Model
	Alias            *string        `gorm:"uniqueIndex" json:"alias"`
	ShortID          string         `gorm:"not null;uniqueIndex" json:"shortId"`
	OwnerID          *uint          `json:"ownerId"`
	Owner            *User          `gorm:"foreignKey:OwnerID" json:"-"`
	LastChangeUserID *uint          `json:"lastChangeUserId"`
	LastChangeUser   *User          `gorm:"foreignKey:LastChangeUserID" json:"-"`
	Permission       NotePermission `gorm:"not null;default:freely" json:"permission"`
	Title            string         `json:"title"`
	Content          string         `json:"content"`
	ViewCount        uint64         `gorm:"not null;default:0" json:"viewcount"`
	LastChangeAt     time.Time      `json:"lastchangeAt"`
}

// Revision is the stored snapshot created alongside every note write.
type Revision struct {
	Model
	NoteID  uint   `gorm:"not null;index" json:"noteId"`
	Content string `gorm:"not null" json:"content"`
	Length  int    `gorm:"not null" json:"length"`
}

const untitledNote = "Untitled"

// ExternalToken returns the canonical URL token for the note.
func (n *Note) ExternalToken() string {
	if n.Alias != nil && *n.Alias != "" {
		return *n.Alias
	}
	return n.ShortID
}

// DecodeTitle returns the stored title, falling back to "Untitled".
func DecodeTitle(title string) string {
	if title == "" {
		return untitledNote
	}
	return title
}

// GenerateWebTitle decorates a title for the browser tab.
func GenerateWebTitle(title string) string {
	if title == "" || title == untitledNote {
		return "NoteHub - Collaborative markdown notes"
	}
	if !strings.HasSuffix(title, " - NoteHub") {
		title += " - NoteHub"
	}
	return title
}

// ParseTitle extracts the document title from markdown content, the first
// top-level heading if one exists.
func ParseTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return untitledNote
}

// GenerateDescription flattens markdown into a short plain-text summary.
func GenerateDescription(markdown string) string {
	replacer := strings.NewReplacer(
		"#", "", "*", "", "`", "", ">", "", "_", "", "~", "",
		"\r", "", "\n", " ",
	)
	description := strings.TrimSpace(replacer.Replace(markdown))
	runes := []rune(description)
	if len(runes) > 100 {
		return string(runes[:100]) + "…"
	}
	return description
}

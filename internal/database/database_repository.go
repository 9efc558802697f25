package database

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"notehub/internal/models"
)

// Repository defines data access methods for notes, their revisions, users
// and per-user history entries.
//
// @Summary Interface for note data storage operations
type Repository interface {

	// Ping verifies the underlying connection is alive.
	Ping(ctx context.Context) error

	// FindNoteByRef fetches the note addressed by a parsed external token.
	// The token matches the note's alias or short id; when the token also
	// decodes as an internal id, that id is matched too. Absence is reported
	// as gorm.ErrRecordNotFound.
	//
	// Param ref body models.NoteRef true "Parsed external note token"
	FindNoteByRef(ctx context.Context, ref models.NoteRef, includeUsers bool, note *models.Note) error

	// CreateNoteWithRevision stores a new note together with its initial
	// revision in one transaction.
	CreateNoteWithRevision(ctx context.Context, note *models.Note) error

	// IncrementNoteViewCount bumps the view counter of an existing note.
	IncrementNoteViewCount(ctx context.Context, note *models.Note) error

	// FindUserByID fetches the user record with the specified id.
	//
	// Param id path uint true "User id"
	FindUserByID(ctx context.Context, id uint, user *models.User) error

	// FindUserLoginCredentials fetches the user record with the specified username.
	//
	// Param username path string true "Username"
	FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error

	// UpsertHistoryEntry inserts or refreshes the history entry keyed by
	// (user id, note token).
	UpsertHistoryEntry(ctx context.Context, entry *models.HistoryEntry) error

	// FindHistoryEntriesByUserID retrieves all history entries of one user.
	FindHistoryEntriesByUserID(ctx context.Context, userID uint, entries *[]models.HistoryEntry) error

	// DeleteHistoryEntry removes a single history entry of one user.
	DeleteHistoryEntry(ctx context.Context, userID uint, noteRef string) error
}

// NullRepository is a no-op implementation of the Repository interface.
// Useful for testing or default wiring when no database operations are required.
type NullRepository struct{}

// ensure NullRepository implements Repository
var _ Repository = &NullRepository{}

func (n *NullRepository) Ping(ctx context.Context) error {
	return nil
}

func (n *NullRepository) FindNoteByRef(ctx context.Context, ref models.NoteRef, includeUsers bool, note *models.Note) error {
	return nil
}

func (n *NullRepository) CreateNoteWithRevision(ctx context.Context, note *models.Note) error {
	return nil
}

func (n *NullRepository) IncrementNoteViewCount(ctx context.Context, note *models.Note) error {
	return nil
}

func (n *NullRepository) FindUserByID(ctx context.Context, id uint, user *models.User) error {
	return nil
}

func (n *NullRepository) FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error {
	return nil
}

func (n *NullRepository) UpsertHistoryEntry(ctx context.Context, entry *models.HistoryEntry) error {
	return nil
}

func (n *NullRepository) FindHistoryEntriesByUserID(ctx context.Context, userID uint, entries *[]models.HistoryEntry) error {
	return nil
}

func (n *NullRepository) DeleteHistoryEntry(ctx context.Context, userID uint, noteRef string) error {
	return nil
}

// GormRepository provides a GORM-based implementation of the Repository interface.
type GormRepository struct {
	*gorm.DB
}

// ensure GormRepository implements Repository
var _ Repository = &GormRepository{}

func (g *GormRepository) Ping(ctx context.Context) error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *GormRepository) FindNoteByRef(ctx context.Context, ref models.NoteRef, includeUsers bool, note *models.Note) error {
	q := g.DB.WithContext(ctx).Model(&models.Note{})
	if includeUsers {
		q = q.Preload("Owner").Preload("LastChangeUser")
	}
	if ref.HasID {
		q = q.Where("alias = ? OR short_id = ? OR id = ?", ref.Token, ref.Token, ref.ID)
	} else {
		q = q.Where("alias = ? OR short_id = ?", ref.Token, ref.Token)
	}
	return q.Take(note).Error
}

func (g *GormRepository) CreateNoteWithRevision(ctx context.Context, note *models.Note) error {
	return g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return err
		}
		revision := models.Revision{
			NoteID:  note.ID,
			Content: note.Content,
			Length:  len(note.Content),
		}
		return tx.Create(&revision).Error
	})
}

func (g *GormRepository) IncrementNoteViewCount(ctx context.Context, note *models.Note) error {
	err := g.DB.
		WithContext(ctx).
		Model(note).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).
		Error
	if err != nil {
		return err
	}
	note.ViewCount++
	return nil
}

func (g *GormRepository) FindUserByID(ctx context.Context, id uint, user *models.User) error {
	return g.DB.
		WithContext(ctx).
		Model(models.User{}).
		Where("id = ?", id).
		Take(user).
		Error
}

func (g *GormRepository) FindUserLoginCredentials(ctx context.Context, username string, user *models.User) error {
	return g.DB.
		WithContext(ctx).
		Model(models.User{}).
		Where("username = ?", username).
		Take(user).
		Error
}

func (g *GormRepository) UpsertHistoryEntry(ctx context.Context, entry *models.HistoryEntry) error {
	return g.DB.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			// refresh the snapshot in place on (user_id, note_ref) conflict
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "note_ref"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "content", "visited_at", "updated_at"}),
		}).
		Create(entry).
		Error
}

func (g *GormRepository) FindHistoryEntriesByUserID(ctx context.Context, userID uint, entries *[]models.HistoryEntry) error {
	return g.DB.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Find(entries).
		Error
}

func (g *GormRepository) DeleteHistoryEntry(ctx context.Context, userID uint, noteRef string) error {
	return g.DB.
		WithContext(ctx).
		Where("user_id = ? AND note_ref = ?", userID, noteRef).
		Delete(&models.HistoryEntry{}).
		Error
}

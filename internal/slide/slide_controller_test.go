package slide_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"notehub/internal/api"
	"notehub/internal/database"
	"notehub/internal/environment"
	"notehub/internal/history"
	"notehub/internal/middlewares"
	"notehub/internal/models"
	"notehub/internal/note"
	"notehub/internal/slide"
)

const testServerURL = "https://notes.example.com"

// ####################### valid behavior tests
func TestShowPublishSlide_RendersCanonicalToken(t *testing.T) {
	repo := &mockRepository{note: &models.Note{
		Model:   models.Model{ID: 1},
		ShortID: "abc123def456",
		Title:   "Roadmap",
		Content: "---\nslideOptions:\n  theme: moon\n---\n# Roadmap\nbody",
	}}
	ctrl := newTestSlideController(repo)

	w, c := newSlideContext("abc123def456")
	middlewares.SetSessionUser(c, 7, "tester")

	ctrl.ShowPublishSlide(c)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Roadmap - NoteHub") {
		t.Errorf("want decorated title in page, got %q", body)
		return
	}

	if !strings.Contains(body, `data-theme="moon"`) {
		t.Errorf("want whitelisted theme applied, got %q", body)
		return
	}

	if repo.incrementCalls != 1 {
		t.Errorf("want one view count increment, got %d", repo.incrementCalls)
		return
	}

	if len(repo.upserts) != 1 {
		t.Fatalf("want one history entry for an authenticated view, got %d", len(repo.upserts))
	}

	if repo.upserts[0].NoteRef != "abc123def456" {
		t.Errorf("want history keyed by external token, got %q", repo.upserts[0].NoteRef)
		return
	}
}

func TestShowPublishSlide_AnonymousViewLeavesNoHistory(t *testing.T) {
	repo := &mockRepository{note: &models.Note{
		Model:   models.Model{ID: 1},
		ShortID: "abc123def456",
		Content: "# Roadmap",
	}}
	ctrl := newTestSlideController(repo)

	w, c := newSlideContext("abc123def456")

	ctrl.ShowPublishSlide(c)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	if len(repo.upserts) != 0 {
		t.Errorf("want no history entry for an anonymous view, got %d", len(repo.upserts))
		return
	}
}

func TestShowPublishSlide_RedirectsToCanonicalAlias(t *testing.T) {
	alias := "features"
	repo := &mockRepository{note: &models.Note{
		Model:   models.Model{ID: 1},
		Alias:   &alias,
		ShortID: "abc123def456",
	}}
	ctrl := newTestSlideController(repo)

	w, c := newSlideContext("abc123def456")

	ctrl.ShowPublishSlide(c)

	if w.Code != http.StatusFound {
		t.Fatalf("want 302, got %d", w.Code)
	}

	if got := w.Header().Get("Location"); got != testServerURL+"/p/features" {
		t.Errorf("unexpected redirect %q", got)
		return
	}

	if repo.incrementCalls != 0 {
		t.Errorf("want no view count increment before the canonical render, got %d", repo.incrementCalls)
		return
	}
}

func TestShowPublishSlide_UnlistedThemeFallsBack(t *testing.T) {
	repo := &mockRepository{note: &models.Note{
		Model:   models.Model{ID: 1},
		ShortID: "abc123def456",
		Content: "---\nslideOptions:\n  theme: neon\n---\nbody",
	}}
	ctrl := newTestSlideController(repo)

	w, c := newSlideContext("abc123def456")

	ctrl.ShowPublishSlide(c)

	if !strings.Contains(w.Body.String(), `data-theme=""`) {
		t.Errorf("want unlisted theme dropped, got %q", w.Body.String())
		return
	}
}

func TestSlideActions_Edit(t *testing.T) {
	alias := "features"
	repo := &mockRepository{note: &models.Note{
		Model:   models.Model{ID: 1},
		Alias:   &alias,
		ShortID: "abc123def456",
	}}
	ctrl := newTestSlideController(repo)

	w, c := newSlideContext("features")
	c.Params = append(c.Params, gin.Param{Key: "action", Value: "edit"})

	ctrl.SlideActions(c)

	if got := w.Header().Get("Location"); got != testServerURL+"/features" {
		t.Errorf("unexpected redirect %q", got)
		return
	}
}

func TestSlideActions_UnknownActionFallsBack(t *testing.T) {
	repo := &mockRepository{note: &models.Note{
		Model:   models.Model{ID: 1},
		ShortID: "abc123def456",
	}}
	ctrl := newTestSlideController(repo)

	w, c := newSlideContext("abc123def456")
	c.Params = append(c.Params, gin.Param{Key: "action", Value: "print"})

	ctrl.SlideActions(c)

	if got := w.Header().Get("Location"); got != testServerURL+"/p/abc123def456" {
		t.Errorf("unexpected redirect %q", got)
		return
	}
}

// ####################### invalid behavior tests
func TestShowPublishSlide_ViewCountError(t *testing.T) {
	repo := &mockRepository{
		note:         &models.Note{Model: models.Model{ID: 1}, ShortID: "abc123def456"},
		incrementErr: errors.New("update failed"),
	}
	ctrl := newTestSlideController(repo)

	w, c := newSlideContext("abc123def456")

	ctrl.ShowPublishSlide(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("want 500, got %d", w.Code)
		return
	}
}

func TestShowPublishSlide_NotFound(t *testing.T) {
	ctrl := newTestSlideController(&mockRepository{})

	w, c := newSlideContext("missing")

	ctrl.ShowPublishSlide(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("want 404, got %d", w.Code)
		return
	}
}

// ####################### creating mocks
func newTestSlideController(repo *mockRepository) *slide.Controller {
	env := environment.Null()
	env.Repository = repo

	responder := api.Responder{ServerURL: testServerURL}

	return &slide.Controller{
		Env:       env,
		Responder: responder,
		Resolver:  note.NewResolver(env, responder, note.ResolverConfig{}, nil),
		History:   &history.Recorder{Env: env},
		ServerURL: testServerURL,
	}
}

func newSlideContext(noteID string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(api.Templates())

	c.Request = httptest.NewRequest(http.MethodGet, "/p/"+noteID, nil)
	c.Params = gin.Params{{Key: "noteId", Value: noteID}}

	return w, c
}

type mockRepository struct {
	database.NullRepository

	note *models.Note

	incrementErr   error
	incrementCalls int

	upserts []models.HistoryEntry
}

func (m *mockRepository) FindNoteByRef(_ context.Context, ref models.NoteRef, _ bool, out *models.Note) error {
	if m.note == nil {
		return gorm.ErrRecordNotFound
	}

	n := m.note
	if (n.Alias != nil && *n.Alias == ref.Token) || n.ShortID == ref.Token || (ref.HasID && n.ID == ref.ID) {
		*out = *n
		return nil
	}

	return gorm.ErrRecordNotFound
}

func (m *mockRepository) IncrementNoteViewCount(_ context.Context, n *models.Note) error {
	if m.incrementErr != nil {
		return m.incrementErr
	}

	m.incrementCalls++
	n.ViewCount++
	return nil
}

func (m *mockRepository) UpsertHistoryEntry(_ context.Context, entry *models.HistoryEntry) error {
	m.upserts = append(m.upserts, *entry)
	return nil
}

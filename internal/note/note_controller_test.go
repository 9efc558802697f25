package note_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"notehub/internal/api"
	"notehub/internal/environment"
	"notehub/internal/history"
	"notehub/internal/models"
	"notehub/internal/note"
)

// ####################### valid behavior tests
func TestNewNote_Authenticated(t *testing.T) {
	repo := &mockRepository{}
	ctrl := newTestNoteController(repo, false, false)

	w, c := newPostContext("# Meeting Notes\r\nbody")
	setSession(c, 7)

	ctrl.NewNote(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusFound {
		t.Fatalf("want 302, got %d", w.Code)
	}

	if len(repo.created) != 1 {
		t.Fatalf("want one stored note, got %d", len(repo.created))
	}

	created := repo.created[0]
	if created.Title != "Meeting Notes" {
		t.Errorf("want parsed title Meeting Notes, got %q", created.Title)
		return
	}

	if strings.Contains(created.Content, "\r") {
		t.Errorf("want carriage returns stripped from stored content")
		return
	}

	if created.OwnerID == nil || *created.OwnerID != 7 {
		t.Errorf("want owner 7, got %v", created.OwnerID)
		return
	}

	if created.Permission != models.PermissionEditable {
		t.Errorf("want editable permission for owned note, got %s", created.Permission)
		return
	}

	if got := w.Header().Get("Location"); got != testServerURL+"/"+created.ExternalToken() {
		t.Errorf("unexpected redirect %q", got)
		return
	}

	if len(repo.upserts) != 1 {
		t.Errorf("want one history entry after creation, got %d", len(repo.upserts))
		return
	}
}

func TestNewNote_AnonymousAllowed(t *testing.T) {
	repo := &mockRepository{}
	ctrl := newTestNoteController(repo, true, false)

	w, c := newPostContext("anonymous scribble")

	ctrl.NewNote(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusFound {
		t.Fatalf("want 302, got %d", w.Code)
	}

	created := repo.created[0]
	if created.OwnerID != nil {
		t.Errorf("want no owner on anonymous note, got %v", *created.OwnerID)
		return
	}

	if created.Permission != models.PermissionFreely {
		t.Errorf("want freely permission for anonymous note, got %s", created.Permission)
		return
	}

	if len(repo.upserts) != 0 {
		t.Errorf("want no history entry for anonymous creation, got %d", len(repo.upserts))
		return
	}
}

func TestCreateFreeNote_ThroughResolver(t *testing.T) {
	repo := &mockRepository{}
	ctrl := newTestNoteController(repo, false, true)

	w, c := newTestContext("/brand-new-page", "brand-new-page")
	setSession(c, 7)

	_, ok := ctrl.Resolver.Resolve(c, false)
	if ok {
		t.Fatalf("want resolution to hand off to creation")
	}

	if len(repo.created) != 1 {
		t.Fatalf("want one stored note, got %d", len(repo.created))
	}

	created := repo.created[0]
	if created.Alias == nil || *created.Alias != "brand-new-page" {
		t.Errorf("want alias brand-new-page, got %v", created.Alias)
		return
	}

	if got := w.Header().Get("Location"); got != testServerURL+"/brand-new-page" {
		t.Errorf("unexpected redirect %q", got)
		return
	}
}

func TestPublishActions_Download(t *testing.T) {
	repo := &mockRepository{notes: []*models.Note{
		{Model: models.Model{ID: 1}, ShortID: "abc123def456", Title: "Roadmap", Content: "# Roadmap\nbody"},
	}}
	ctrl := newTestNoteController(repo, false, false)

	w, c := newActionContext("abc123def456", "download")

	ctrl.PublishActions(c)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=Roadmap.md" {
		t.Errorf("unexpected content disposition %q", got)
		return
	}

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("want permissive CORS on download, got %q", got)
		return
	}

	if w.Body.String() != "# Roadmap\nbody" {
		t.Errorf("unexpected body %q", w.Body.String())
		return
	}
}

func TestPublishActions_EditPrefersAlias(t *testing.T) {
	alias := "features"
	repo := &mockRepository{notes: []*models.Note{
		{Model: models.Model{ID: 1}, Alias: &alias, ShortID: "abc123def456"},
	}}
	ctrl := newTestNoteController(repo, false, false)

	w, c := newActionContext("abc123def456", "edit")

	ctrl.PublishActions(c)

	if got := w.Header().Get("Location"); got != testServerURL+"/features" {
		t.Errorf("unexpected redirect %q", got)
		return
	}
}

func TestPublishActions_EditWithoutAlias(t *testing.T) {
	repo := &mockRepository{notes: []*models.Note{
		{Model: models.Model{ID: 1}, ShortID: "abc123"},
	}}
	ctrl := newTestNoteController(repo, false, false)

	w, c := newActionContext("abc123", "edit")

	ctrl.PublishActions(c)

	if got := w.Header().Get("Location"); got != testServerURL+"/abc123" {
		t.Errorf("unexpected redirect %q", got)
		return
	}
}

func TestPublishActions_UnknownActionFallsBack(t *testing.T) {
	repo := &mockRepository{notes: []*models.Note{
		{Model: models.Model{ID: 1}, ShortID: "abc123def456"},
	}}
	ctrl := newTestNoteController(repo, false, false)

	w, c := newActionContext("abc123def456", "raw")

	ctrl.PublishActions(c)

	if w.Code != http.StatusFound {
		t.Fatalf("want 302, got %d", w.Code)
	}

	if got := w.Header().Get("Location"); got != testServerURL+"/s/abc123def456" {
		t.Errorf("unexpected redirect %q", got)
		return
	}
}

// ####################### invalid behavior tests
func TestNewNote_TooLongWritesNothing(t *testing.T) {
	repo := &mockRepository{}
	ctrl := newTestNoteController(repo, true, false)

	w, c := newPostContext(strings.Repeat("x", 1001))

	ctrl.NewNote(c)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("want 413, got %d", w.Code)
	}

	if len(repo.created) != 0 {
		t.Errorf("want no stored note on oversized body, got %d", len(repo.created))
		return
	}
}

func TestNewNote_AnonymousDeniedRedirectsToLogin(t *testing.T) {
	repo := &mockRepository{}
	ctrl := newTestNoteController(repo, false, false)

	w, c := newPostContext("scribble")

	ctrl.NewNote(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusFound {
		t.Fatalf("want 302, got %d", w.Code)
	}

	if !strings.HasPrefix(w.Header().Get("Location"), testServerURL+"/login?next=") {
		t.Errorf("unexpected redirect %q", w.Header().Get("Location"))
		return
	}

	if len(repo.created) != 0 {
		t.Errorf("want no stored note for denied creation, got %d", len(repo.created))
		return
	}
}

func TestNewNote_StoreError(t *testing.T) {
	repo := &mockRepository{createErr: errors.New("insert failed")}
	ctrl := newTestNoteController(repo, true, false)

	w, c := newPostContext("scribble")

	ctrl.NewNote(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("want 500, got %d", w.Code)
		return
	}
}

// ####################### creating mocks
func newTestNoteController(repo *mockRepository, allowAnonymous, allowFreeURL bool) *note.Controller {
	env := environment.Null()
	env.Repository = repo

	responder := api.Responder{ServerURL: testServerURL}

	ctrl := &note.Controller{
		Env:               env,
		Responder:         responder,
		History:           &history.Recorder{Env: env},
		ServerURL:         testServerURL,
		DocumentMaxLength: 1000,
		AllowAnonymous:    allowAnonymous,
	}
	ctrl.Resolver = note.NewResolver(env, responder, note.ResolverConfig{AllowFreeURL: allowFreeURL}, ctrl)

	return ctrl
}

func newPostContext(body string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(api.Templates())

	c.Request = httptest.NewRequest(http.MethodPost, "/note", strings.NewReader(body))

	return w, c
}

func newActionContext(noteID, action string) (*httptest.ResponseRecorder, *gin.Context) {
	w, c := newTestContext("/note/"+noteID+"/"+action, noteID)
	c.Params = append(c.Params, gin.Param{Key: "action", Value: action})

	return w, c
}


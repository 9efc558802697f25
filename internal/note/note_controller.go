package note

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"notehub/internal/api"
	"notehub/internal/environment"
	"notehub/internal/history"
	"notehub/internal/logging"
	"notehub/internal/middlewares"
	"notehub/internal/models"
	"notehub/internal/utils"
)

// Api defines the note endpoints: creation and the publish action family.
//
// @Summary Note creation and publish actions
type Api interface {

	// NewNote creates a note from a raw request body.
	NewNote(c *gin.Context)

	// PublishActions dispatches download | edit | default publish redirect.
	PublishActions(c *gin.Context)
}

// Controller handles note creation and the publish action family. It also
// serves as the free-URL creator invoked by the Resolver when an unused
// token should become a new note.
type Controller struct {
	*environment.Env
	Responder api.Responder
	Resolver  *Resolver
	History   *history.Recorder

	ServerURL         string
	DocumentMaxLength int
	AllowAnonymous    bool
}

// ensure Controller implements both the route surface and the resolver hook
var _ Api = &Controller{}
var _ FreeNoteCreator = &Controller{}

// NewNote creates a note from the raw request body and redirects to its
// canonical URL.
//
// @ID newNote
// @Summary Create a note
// @Tags note
// @Router /note [post]
// @Success 302
// @Failure 403
// @Failure 413
// @Failure 500
func (nc *Controller) NewNote(c *gin.Context) {
	nc.createNote(c, "")
}

// CreateFreeNote creates a note aliased to an unused URL token. Two
// simultaneous creations for the same token race; the loser's unique-index
// violation surfaces as an internal error, which is the accepted outcome.
func (nc *Controller) CreateFreeNote(c *gin.Context, alias string) {
	nc.createNote(c, alias)
}

func (nc *Controller) createNote(c *gin.Context, alias string) {
	content := ""
	if c.Request != nil && c.Request.Body != nil {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			nc.LogErrorf(nil, "reading note body failed: %v", err)
			nc.Responder.BadRequest(c)
			return
		}
		content = string(body)
	}
	if len(content) > nc.DocumentMaxLength {
		nc.Responder.TooLong(c)
		return
	}
	content = strings.ReplaceAll(content, "\r", "")

	var ownerID *uint
	permission := models.PermissionFreely
	userID, isAuthenticated := middlewares.SessionUserID(c)
	if isAuthenticated {
		ownerID = &userID
		permission = models.PermissionEditable
	} else if !nc.AllowAnonymous {
		nc.Responder.Forbidden(c, false)
		return
	}

	_, markdown := models.ExtractMeta(content)
	created := models.Note{
		ShortID:      models.NewShortID(),
		OwnerID:      ownerID,
		Permission:   permission,
		Title:        models.ParseTitle(markdown),
		Content:      content,
		LastChangeAt: time.Now(),
	}
	if alias != "" {
		created.Alias = &alias
	}

	if err := nc.CreateNoteWithRevision(c.Request.Context(), &created); err != nil {
		nc.LogErrorf(logging.GetLogTypeNote(alias), "creating note failed: %v", err)
		nc.Responder.InternalError(c)
		return
	}

	if isAuthenticated {
		nc.History.Update(context.WithoutCancel(c.Request.Context()), userID, &created, content, time.Time{})
	}

	c.Redirect(http.StatusFound, nc.ServerURL+"/"+created.ExternalToken())
}

// PublishActions resolves the note named by :noteId and dispatches on the
// :action token. Unrecognized tokens never error; they fall back to the
// canonical short-link publish URL so old links keep working.
//
// @ID publishNoteActions
// @Summary Dispatch a publish action
// @Tags note
// @Router /note/{noteId}/{action} [get]
// @Success 200
// @Success 302
// @Failure 403
// @Failure 404
func (nc *Controller) PublishActions(c *gin.Context) {
	resolved, ok := nc.Resolver.Resolve(c, false)
	if !ok {
		return
	}

	switch c.Param("action") {
	case "download":
		nc.actionDownload(c, resolved)
	case "edit":
		c.Redirect(http.StatusFound, nc.ServerURL+"/"+resolved.ExternalToken())
	default:
		c.Redirect(http.StatusFound, nc.ServerURL+"/s/"+resolved.ShortID)
	}
}

// actionDownload streams the raw note content as an attachment. The endpoint
// is a public API surface: cross-origin access stays permissive even though
// the view permission check has already run.
func (nc *Controller) actionDownload(c *gin.Context, n *models.Note) {
	filename := url.PathEscape(utils.SanitizeFilename(models.DecodeTitle(n.Title)))
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "Range")
	c.Header("Access-Control-Expose-Headers", "Cache-Control, Content-Encoding, Content-Range")
	c.Header("Cache-Control", "private")
	c.Header("Content-Disposition", "attachment; filename="+filename+".md")
	c.Header("X-Robots-Tag", "noindex, nofollow")
	c.Data(http.StatusOK, "text/markdown; charset=UTF-8", []byte(n.Content))
}

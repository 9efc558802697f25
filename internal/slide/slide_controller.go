package slide

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notehub/internal/api"
	"notehub/internal/environment"
	"notehub/internal/history"
	"notehub/internal/logging"
	"notehub/internal/middlewares"
	"notehub/internal/models"
	"notehub/internal/note"
	"notehub/internal/utils"
)

// Api defines the slide endpoints: the rendered presentation view and its
// action family.
type Api interface {

	// ShowPublishSlide renders the slide view of a note.
	ShowPublishSlide(c *gin.Context)

	// SlideActions dispatches edit | default slide redirect.
	SlideActions(c *gin.Context)
}

// Controller serves the published slide views.
type Controller struct {
	*environment.Env
	Responder api.Responder
	Resolver  *note.Resolver
	History   *history.Recorder

	ServerURL string
}

// ensure Controller implements Api
var _ Api = &Controller{}

// SlideActions resolves the note and dispatches on the :action token.
// Unrecognized tokens fall back to the canonical slide URL.
//
// @ID publishSlideActions
// @Summary Dispatch a slide action
// @Tags slide
// @Router /slide/{noteId}/{action} [get]
// @Success 302
// @Failure 403
// @Failure 404
func (sc *Controller) SlideActions(c *gin.Context) {
	resolved, ok := sc.Resolver.Resolve(c, false)
	if !ok {
		return
	}

	switch c.Param("action") {
	case "edit":
		c.Redirect(http.StatusFound, sc.ServerURL+"/"+resolved.ExternalToken())
	default:
		c.Redirect(http.StatusFound, sc.ServerURL+"/p/"+resolved.ShortID)
	}
}

// ShowPublishSlide renders the slide view. A note reached through a
// non-canonical token redirects to its canonical slide URL first, so every
// presentation has exactly one public address.
//
// @ID showPublishSlide
// @Summary Render the slide view of a note
// @Tags slide
// @Router /slide/{noteId} [get]
// @Success 200
// @Success 302
// @Failure 403
// @Failure 404
// @Failure 500
func (sc *Controller) ShowPublishSlide(c *gin.Context) {
	resolved, ok := sc.Resolver.Resolve(c, true)
	if !ok {
		return
	}

	token := c.Param("noteId")
	if token != resolved.ExternalToken() {
		c.Redirect(http.StatusFound, sc.ServerURL+"/p/"+resolved.ExternalToken())
		return
	}

	if err := sc.IncrementNoteViewCount(c.Request.Context(), resolved); err != nil {
		sc.LogErrorf(logging.GetLogTypeNote(token), "incrementing view count failed: %v", err)
		sc.Responder.InternalError(c)
		return
	}

	meta, markdown := models.ExtractMeta(resolved.Content)
	parsed := models.ParseMeta(meta)

	title := models.DecodeTitle(resolved.Title)
	if parsed.Title != "" {
		title = parsed.Title
	}
	description := parsed.Description
	if description == "" && markdown != "" {
		description = models.GenerateDescription(markdown)
	}
	theme := ""
	if utils.IsRevealTheme(parsed.SlideOptions.Theme) {
		theme = parsed.SlideOptions.Theme
	}

	data := gin.H{
		"title":                 models.GenerateWebTitle(title),
		"description":           description,
		"viewcount":             resolved.ViewCount,
		"createtime":            resolved.CreatedAt,
		"updatetime":            resolved.LastChangeAt,
		"body":                  markdown,
		"theme":                 theme,
		"meta":                  meta,
		"owner":                 ownerID(resolved.OwnerID),
		"ownerprofile":          models.GetProfile(resolved.Owner),
		"lastchangeuser":        ownerID(resolved.LastChangeUserID),
		"lastchangeuserprofile": models.GetProfile(resolved.LastChangeUser),
		"robots":                parsed.Robots,
		"GA":                    parsed.GA,
		"disqus":                parsed.Disqus,
	}
	c.Header("Cache-Control", "private")
	c.HTML(http.StatusOK, "slide.tmpl", data)

	if userID, isAuthenticated := middlewares.SessionUserID(c); isAuthenticated {
		sc.History.Update(context.WithoutCancel(c.Request.Context()), userID, resolved, resolved.Content, time.Time{})
	}
}

func ownerID(id *uint) any {
	if id == nil {
		return nil
	}
	return *id
}

package github

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"notehub/internal/api"
	"notehub/internal/environment"
	"notehub/internal/logging"
	"notehub/internal/middlewares"
	"notehub/internal/models"
	"notehub/internal/note"
)

// Api defines the GitHub action family.
type Api interface {
	// GithubActions dispatches gist | default note redirect.
	GithubActions(c *gin.Context)
}

// Controller exports notes to GitHub gists.
type Controller struct {
	*environment.Env
	Responder api.Responder
	Resolver  *note.Resolver
	Exchanger CodeExchanger
	Gists     GistCreator

	ServerURL string
}

// ensure Controller implements Api
var _ Api = &Controller{}

// GithubActions resolves the note and dispatches on the :action token.
// Unrecognized tokens redirect back to the note itself.
//
// @ID githubActions
// @Summary Dispatch a GitHub action
// @Tags github
// @Router /github/{noteId}/{action} [get]
// @Success 302
// @Failure 403
// @Failure 404
func (gc *Controller) GithubActions(c *gin.Context) {
	token := c.Param("noteId")
	resolved, ok := gc.Resolver.Resolve(c, false)
	if !ok {
		return
	}

	switch c.Param("action") {
	case "gist":
		gc.actionGist(c, resolved)
	default:
		c.Redirect(http.StatusFound, gc.ServerURL+"/"+token)
	}
}

// actionGist runs the two-step export: exchange the OAuth callback code for
// an access token, then publish the note as a gist. Every failure along the
// way collapses into a single forbidden outcome; no partial-success state is
// exposed, and the export call is never made once the exchange has failed.
func (gc *Controller) actionGist(c *gin.Context, n *models.Note) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		gc.Responder.Forbidden(c, middlewares.IsAuthenticated(c))
		return
	}

	ctx := c.Request.Context()
	accessToken, err := gc.Exchanger.ExchangeCode(ctx, code, state)
	if err != nil {
		gc.LogErrorf(logging.GetLogTypeExport(), "gist token exchange failed: %v", err)
		gc.Responder.Forbidden(c, middlewares.IsAuthenticated(c))
		return
	}

	filename := strings.ReplaceAll(models.DecodeTitle(n.Title), "/", " ") + ".md"
	gistURL, err := gc.Gists.CreateGist(ctx, accessToken, filename, n.Content)
	if err != nil {
		gc.LogErrorf(logging.GetLogTypeExport(), "gist creation failed: %v", err)
		gc.Responder.Forbidden(c, middlewares.IsAuthenticated(c))
		return
	}

	c.Header("Referer", "")
	c.Redirect(http.StatusFound, gistURL)
}

package gitlab

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"notehub/internal/api"
	"notehub/internal/environment"
	"notehub/internal/logging"
	"notehub/internal/middlewares"
	"notehub/internal/models"
	"notehub/internal/note"
)

// Api defines the GitLab action family.
type Api interface {
	// GitlabActions dispatches projects | default note redirect.
	GitlabActions(c *gin.Context)
}

// Controller serves the GitLab integration endpoints.
type Controller struct {
	*environment.Env
	Responder api.Responder
	Resolver  *note.Resolver
	Projects  ProjectLister

	ServerURL string
	BaseURL   string
	Version   string
}

// ensure Controller implements Api
var _ Api = &Controller{}

// GitlabActions resolves the note and dispatches on the :action token.
// Unrecognized tokens redirect back to the note itself.
//
// @ID gitlabActions
// @Summary Dispatch a GitLab action
// @Tags gitlab
// @Router /gitlab/{noteId}/{action} [get]
// @Success 200
// @Success 302
// @Failure 403
// @Failure 404
func (gc *Controller) GitlabActions(c *gin.Context) {
	token := c.Param("noteId")
	if _, ok := gc.Resolver.Resolve(c, false); !ok {
		return
	}

	switch c.Param("action") {
	case "projects":
		gc.actionProjects(c)
	default:
		c.Redirect(http.StatusFound, gc.ServerURL+"/"+token)
	}
}

// actionProjects returns the caller's stored GitLab credentials plus a
// best-effort project listing. An external failure leaves the `projects`
// field out and still answers 200: the client can render its connection
// settings without the listing. That degrade is a designed contract, not an
// oversight.
func (gc *Controller) actionProjects(c *gin.Context) {
	userID, isAuthenticated := middlewares.SessionUserID(c)
	if !isAuthenticated {
		gc.Responder.Forbidden(c, false)
		return
	}

	var user models.User
	err := gc.FindUserByID(c.Request.Context(), userID, &user)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		gc.Responder.NotFound(c)
		return
	}
	if err != nil {
		gc.LogErrorf(logging.GetLogTypeExport(), "gitlab action projects failed: %v", err)
		gc.Responder.InternalError(c)
		return
	}

	ret := gin.H{
		"baseURL":     gc.BaseURL,
		"version":     gc.Version,
		"accesstoken": user.AccessToken,
		"profileid":   user.ProfileID,
	}

	projects, err := gc.Projects.ListProjects(c.Request.Context(), gc.BaseURL, gc.Version, user.AccessToken)
	if err != nil {
		gc.LogWarnf(logging.GetLogTypeExport(), "gitlab project listing unavailable: %v", err)
		c.JSON(http.StatusOK, ret)
		return
	}

	ret["projects"] = projects
	c.JSON(http.StatusOK, ret)
}

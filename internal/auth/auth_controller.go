package auth

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notehub/internal/api"
	"notehub/internal/environment"
	"notehub/internal/middlewares"
	"notehub/internal/models"
)

// Api defines the session endpoints consumed by the note application.
//
// @Summary Authentication API
type Api interface {

	// Login verifies credentials and opens a session.
	Login(c *gin.Context)

	// Logout closes the session.
	Logout(c *gin.Context)
}

// Controller wires environment dependencies with authentication service
// methods. It fulfills the Api interface and delegates credential checks to
// AuthService.
type Controller struct {
	*environment.Env
	*AuthService

	SigningKey string
	CookieName string
	Lifetime   time.Duration
}

// ensure Controller implements Api
var _ Api = &Controller{}

// Login verifies credentials, issues a session token and sets the session
// cookie. The token is also returned in the body for non-browser clients.
//
// @ID login
// @Summary Open a session
// @Tags auth
// @Router /login [post]
// @Success 200 {object} api.RestJsonResponse{data=string}
// @Failure 401 {object} api.RestJsonResponse{data=string}
func (ac *Controller) Login(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ac.LogErrorf(nil, "Error reading login info: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.NewErrorResponse("Error reading login info"))
		return
	}

	request := api.GenericRequest{}
	err = request.Load(body)
	if err != nil {
		ac.LogErrorf(nil, "Error loading request data: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.NewErrorResponse("Error reading login info"))
		return
	}

	user := models.User{}
	err = request.DecodeDataTo(&user)
	if err != nil {
		ac.LogErrorf(nil, "Error loading user data: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.NewErrorResponse("Error reading user info"))
		return
	}
	user.Prepare()
	err = user.Validate()
	if err != nil {
		ac.LogErrorf(nil, "Error validating user: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.NewErrorResponsef("Error validating User: %v", err))
		return
	}

	err = ac.DoLogin(c.Request.Context(), &user)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.NewErrorResponse("Login not successful"))
		return
	}

	//issue token
	token, expiresAt, err := middlewares.GenerateToken([]byte(ac.SigningKey), user.ID, user.Username, ac.Lifetime)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, api.NewErrorResponse("Error creating session token"))
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(ac.CookieName, token, maxAge, "/", "", false, true)
	middlewares.SetSessionUser(c, user.ID, user.Username)
	c.JSON(http.StatusOK, api.NewGenericResponse(api.Success, "", token))
}

// Logout clears the session cookie.
//
// @ID logout
// @Summary Close the session
// @Tags auth
// @Router /logout [get]
// @Success 200 {object} api.RestJsonResponse
func (ac *Controller) Logout(c *gin.Context) {
	c.SetCookie(ac.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, api.NewGenericResponse(api.Success, "logged out", nil))
}

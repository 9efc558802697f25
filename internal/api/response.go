package api

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// FlashCookie carries a one-shot notice across the login redirect issued to
// anonymous callers hitting a restricted page.
const FlashCookie = "notehub_flash"

const loginNotice = "You are not allowed to access this page. Maybe try logging in?"

// Responder translates abstract failure kinds into uniform HTTP responses.
// It is handed its base URL at construction; handlers never read global
// configuration to build a redirect.
type Responder struct {
	ServerURL string
}

// ResponseError renders the shared error page with a (code, detail, message)
// triple. Internals never leak past these three strings.
func ResponseError(c *gin.Context, code int, detail string, msg string) {
	c.HTML(code, "error.tmpl", gin.H{
		"title":  http.StatusText(code),
		"code":   code,
		"detail": detail,
		"msg":    msg,
	})
}

// Forbidden renders the 403 page for authenticated callers. Anonymous
// callers are redirected to the login page instead, with a flash notice and
// the original path as return target.
func (r Responder) Forbidden(c *gin.Context, isAuthenticated bool) {
	if isAuthenticated {
		ResponseError(c, http.StatusForbidden, "Forbidden", "oh no.")
		return
	}
	next := ""
	if c.Request != nil && c.Request.URL != nil {
		next = c.Request.URL.RequestURI()
	}
	c.SetCookie(FlashCookie, loginNotice, 60, "/", "", false, false)
	c.Redirect(http.StatusFound, r.ServerURL+"/login?next="+url.QueryEscape(next))
}

func (r Responder) NotFound(c *gin.Context) {
	ResponseError(c, http.StatusNotFound, "Not Found", "oops.")
}

func (r Responder) BadRequest(c *gin.Context) {
	ResponseError(c, http.StatusBadRequest, "Bad Request", "something not right.")
}

func (r Responder) TooLong(c *gin.Context) {
	ResponseError(c, http.StatusRequestEntityTooLarge, "Payload Too Large", "Shorten your note!")
}

func (r Responder) InternalError(c *gin.Context) {
	ResponseError(c, http.StatusInternalServerError, "Internal Error", "wtf.")
}

// ServiceUnavailable answers plain text, no template render.
func (r Responder) ServiceUnavailable(c *gin.Context) {
	c.String(http.StatusServiceUnavailable, "I'm busy right now, try again later.")
}

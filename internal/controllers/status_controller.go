package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notehub/internal/api"
	"notehub/internal/environment"
)

// StatusController answers the liveness endpoints.
type StatusController struct {
	*environment.Env
	Responder api.Responder
}

func (sc *StatusController) GetHeartBeat(c *gin.Context) {
	c.AbortWithStatus(http.StatusOK)
}

// GetStatus reports whether the service can reach its data store. An
// unreachable store answers 503 so load balancers take the instance out of
// rotation.
func (sc *StatusController) GetStatus(c *gin.Context) {
	if err := sc.Ping(c.Request.Context()); err != nil {
		sc.LogErrorf(nil, "status check failed: %v", err)
		sc.Responder.ServiceUnavailable(c)
		return
	}
	c.JSON(http.StatusOK, api.NewGenericResponse(api.Success, "running", nil))
}

package routes

import (
	"github.com/gin-gonic/gin"

	"notehub/internal/api"
	"notehub/internal/constants"
	"notehub/internal/history"
	"notehub/internal/middlewares"
)

func RegisterProtectedRoutes(r *gin.Engine, responder api.Responder, controllerRegistry map[int]any) {

	authGroup := r.Group("")

	authGroup.Use(middlewares.RequireAuth(responder))
	{
		// history
		historyApi := controllerRegistry[constants.History].(history.Api)
		authGroup.GET("/history", historyApi.GetHistory)
		authGroup.DELETE("/history/:noteId", historyApi.DeleteHistory)
	}
}

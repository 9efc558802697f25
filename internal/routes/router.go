package routes

import (
	"github.com/gin-gonic/gin"

	"notehub/internal/api"
	"notehub/internal/config"
	"notehub/internal/middlewares"
)

func InitRouter(engine *gin.Engine, c *config.Configuration, controllerRegistry map[int]any) {
	InitMiddleware(engine, c)

	responder := api.Responder{ServerURL: c.ServerBase()}
	RegisterPublicRoutes(engine, controllerRegistry)
	RegisterProtectedRoutes(engine, responder, controllerRegistry)
	RegisterUtilityRoutes(engine, controllerRegistry)
}

func InitMiddleware(engine *gin.Engine, c *config.Configuration) {
	engine.Use(
		middlewares.CORSMiddleware(),
		middlewares.SessionHandler(c.Session.SigningKey, c.Session.CookieName),
	)
}

package routes

import (
	"github.com/gin-gonic/gin"

	"notehub/internal/constants"
	"notehub/internal/controllers"
)

func RegisterUtilityRoutes(r *gin.Engine, controllerRegistry map[int]any) {
	statusController := controllerRegistry[constants.Status].(*controllers.StatusController)
	r.GET("/heartbeat", statusController.GetHeartBeat)
	r.GET("/status", statusController.GetStatus)
}

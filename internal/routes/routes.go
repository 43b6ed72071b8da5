package routes

import (
	"freelancehub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route. All endpoints are public; the
// auth middleware exists in internal/middleware but the API contract
// keeps these routes open.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.PortfolioHandler.RegisterRoutes(api)
		appHandlers.SkillsHandler.RegisterRoutes(api)
	}
}

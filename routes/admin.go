package routes

import (
	"funfans-backend/handlers/admin"
	"funfans-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine, d Deps) {
	h := admin.New(d.Store, d.Credits, d.Payments, d.Mailer)

	g := r.Group("/admin", middleware.JWTAuth(d.Store), middleware.TimeoutGuard(d.Store), middleware.AdminAuth())
	{
		g.GET("/settings", h.GetSettings)
		g.PUT("/settings", h.UpdateSettings)
		g.PUT("/settings/sidebar", h.UpdateSidebar)

		g.GET("/users", h.ListUsers)
		g.PUT("/users/:id/role", h.SetRole)
		g.POST("/users/:id/credits", h.GrantCredits)
		g.POST("/users/:id/timeout", h.SetTimeout)
		g.DELETE("/users/:id/timeout", h.LiftTimeout)
		g.PUT("/users/:id/subscription", h.AssignPlan)
		g.DELETE("/users/:id/subscription", h.CancelPlan)

		g.POST("/content/:id/visibility", h.ToggleVisibility)
		g.DELETE("/content/:id", h.RemoveContent)
		g.POST("/creators/:id/hide", h.HideCreatorContent)
		g.DELETE("/creators/:id/content", h.DeleteCreatorContent)
		g.GET("/reports", h.ListReports)
		g.PUT("/showcase", h.SetShowcase)

		g.PUT("/plans/:id", h.UpdatePlan)
		g.PUT("/packages/:id", h.UpdatePackage)
	}
}

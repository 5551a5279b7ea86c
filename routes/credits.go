package routes

import (
	"funfans-backend/access"
	"funfans-backend/handlers/purchases"
	"funfans-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CreditsRoutes(r *gin.Engine, d Deps) {
	h := purchases.New(d.Store, d.Credits)

	g := r.Group("", middleware.JWTAuth(d.Store), middleware.TimeoutGuard(d.Store))
	{
		g.POST("/content/:id/purchase", h.Purchase)
		g.GET("/wallet", h.Wallet)
		g.GET("/transactions", h.Transactions)
		g.GET("/purchases", h.MyPurchases)
		g.GET("/capabilities", h.Capabilities)
		g.POST("/rewards", middleware.RequireCapability(d.Store, access.EarnCredits), h.Reward)
		g.GET("/payouts", middleware.RequireCapability(d.Store, access.CreatorPayouts), h.Payouts)
	}
}

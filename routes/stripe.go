package routes

import (
	"funfans-backend/access"
	"funfans-backend/handlers/stripe"
	"funfans-backend/middleware"

	"github.com/gin-gonic/gin"
)

func StripeRoutes(r *gin.Engine, d Deps) {
	h := stripe.New(d.Store, d.Payments)

	r.POST("/stripe/webhook", h.Webhook)
	r.GET("/store/packages", h.ListPackages)
	r.GET("/subscriptions/plans", h.ListPlans)

	auth := []gin.HandlerFunc{middleware.JWTAuth(d.Store), middleware.TimeoutGuard(d.Store)}

	storeGroup := r.Group("/store", append(auth, middleware.RequireCapability(d.Store, access.Store))...)
	{
		storeGroup.POST("/packages/:id/checkout", h.CheckoutPackage)
	}

	subscriptions := r.Group("/subscriptions", append(auth, middleware.RequireCapability(d.Store, access.ManageSubscription))...)
	{
		subscriptions.POST("", h.Subscribe)
		subscriptions.GET("/me", h.CurrentSubscription)
		subscriptions.DELETE("/me", h.CancelSubscription)
	}
}

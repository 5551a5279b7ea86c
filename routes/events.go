package routes

import (
	"funfans-backend/handlers/events"
	"funfans-backend/middleware"

	"github.com/gin-gonic/gin"
)

func EventsRoutes(r *gin.Engine, d Deps) {
	h := events.New(d.Hub, d.CORSOrigins)
	r.GET("/events/ws", middleware.JWTAuth(d.Store), middleware.TimeoutGuard(d.Store), h.ServeWS)
}

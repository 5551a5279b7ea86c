package routes

import (
	"funfans-backend/handlers/ping"

	"github.com/gin-gonic/gin"
)

func PingRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", ping.New(d.Store).HandlePing)
}

package routes

import (
	"funfans-backend/access"
	"funfans-backend/handlers/content"
	"funfans-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ContentRoutes(r *gin.Engine, d Deps) {
	h := content.New(d.Store, d.Uploader)

	r.GET("/tags", h.ListTags)

	g := r.Group("/content", middleware.JWTAuth(d.Store), middleware.TimeoutGuard(d.Store))
	{
		g.POST("", middleware.RequireCapability(d.Store, access.CreateContent), h.CreateContent)
		g.GET("", h.ListContent)
		g.GET("/mine", middleware.RequireCapability(d.Store, access.MyCreations), h.MyCreations)
		g.GET("/:id", h.GetContent)
		g.DELETE("/:id", h.DeleteContent)
		g.POST("/:id/like", h.ToggleLike)
		g.POST("/:id/reaction", h.React)
		g.POST("/:id/share", h.Share)
		g.GET("/:id/comments", h.ListComments)
		g.POST("/:id/comments", h.AddComment)
		g.POST("/:id/report", h.Report)
	}
}

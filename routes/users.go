package routes

import (
	"funfans-backend/handlers/users"
	"funfans-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine, d Deps) {
	h := users.New(d.Store, d.Uploader, d.VitrineBaseURL)

	r.GET("/vitrine/:slug", h.Vitrine)
	r.GET("/showcase", h.Showcase)

	g := r.Group("/users", middleware.JWTAuth(d.Store), middleware.TimeoutGuard(d.Store))
	{
		g.GET("/me", h.GetProfile)
		g.PUT("/me", h.UpdateProfile)
		g.POST("/me/picture", h.UploadPicture)
		g.GET("/me/share-link", h.ShareLink)
		g.POST("/:id/follow", h.Follow)
		g.DELETE("/:id/follow", h.Unfollow)
	}
}

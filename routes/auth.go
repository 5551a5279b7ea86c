package routes

import (
	"funfans-backend/handlers/auth"
	"funfans-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, d Deps) {
	h := auth.New(d.Store, d.Credits, d.Mailer, auth.Options{
		TokenTTL:       d.TokenTTL,
		SignupBonus:    d.SignupBonus,
		VitrineBaseURL: d.VitrineBaseURL,
	})

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/password/forgot", h.ForgotPassword)
	r.POST("/password/reset", h.ResetPassword)
	// A timed out user can still sign out.
	r.POST("/logout", middleware.JWTAuth(d.Store), h.Logout)
}

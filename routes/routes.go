package routes

import (
	"time"

	"funfans-backend/credits"
	"funfans-backend/media"
	"funfans-backend/payments"
	"funfans-backend/realtime"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the services shared by the route groups.
type Deps struct {
	Store    store.Store
	Credits  *credits.Service
	Payments *payments.Service
	Hub      *realtime.Hub
	Uploader media.Uploader
	Mailer   utils.Mailer

	CORSOrigins    []string
	TokenTTL       time.Duration
	SignupBonus    int64
	VitrineBaseURL string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !allowsAny(d.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	PingRoutes(r, d)
	AuthRoutes(r, d)
	UsersRoutes(r, d)
	ContentRoutes(r, d)
	CreditsRoutes(r, d)
	StripeRoutes(r, d)
	AdminRoutes(r, d)
	EventsRoutes(r, d)

	return r
}

// allowsAny reports whether origins is the wildcard, which cors refuses to
// combine with credentials.
func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

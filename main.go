package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"funfans-backend/config"
	"funfans-backend/credits"
	"funfans-backend/db"
	_ "funfans-backend/docs"
	"funfans-backend/media"
	"funfans-backend/payments"
	"funfans-backend/realtime"
	"funfans-backend/routes"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title FunFans API
// @version 1.0
// @description FunFans backend API: content, credits, subscriptions and administration
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	if err := utils.SetupLogger(cfg.LogLevel, cfg.LogDir); err != nil {
		log.Fatal("Error setting up the logger: ", err)
	}

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := store.NewGormStore(db.InitDB(cfg.DatabaseURL))

	hub := realtime.NewHub()
	go hub.Run(ctx)

	creditService := credits.NewService(s, hub)

	var gateway payments.Gateway
	if cfg.StripeEnabled() {
		gateway = payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	} else {
		utils.LogInfo("STRIPE_SECRET_KEY not set, checkout is disabled")
	}
	paymentService := payments.NewService(s, creditService, gateway, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)

	var uploader media.Uploader = media.DisabledUploader{}
	if cfg.CloudinaryEnabled() {
		cld, err := media.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			utils.LogError(err, "Cloudinary initialisation failed, uploads are disabled")
		} else {
			uploader = cld
		}
	} else {
		utils.LogInfo("Cloudinary not configured, uploads are disabled")
	}

	var mailer utils.Mailer = utils.LogMailer{}
	if cfg.SMTPEnabled() {
		mailer = utils.SMTPMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}
	}

	r := routes.SetupRouter(routes.Deps{
		Store:          s,
		Credits:        creditService,
		Payments:       paymentService,
		Hub:            hub,
		Uploader:       uploader,
		Mailer:         mailer,
		CORSOrigins:    cfg.CORSOrigins,
		TokenTTL:       cfg.JWTTTL,
		SignupBonus:    cfg.SignupBonusCredits,
		VitrineBaseURL: cfg.VitrineBaseURL,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		utils.LogInfo("Shutting down the HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			utils.LogError(err, "Graceful shutdown failed")
		}
	}()

	utils.LogInfo("FunFans API listening on " + cfg.HTTPAddress())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Server failed to start: ", err)
	}
}

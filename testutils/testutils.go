package testutils

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"funfans-backend/db"
	"funfans-backend/models"
	"funfans-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const JWTSecret = "test-secret"

func SetupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Error creating the SQL mock connection: %s", err)
	}

	newLogger := logger.New(
		log.New(io.Discard, "", log.LstdFlags),
		logger.Config{
			LogLevel: logger.Silent,
		},
	)

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Error opening the GORM connection: %s", err)
	}

	originalDB := db.DB
	db.DB = gormDB

	cleanup := func() {
		db.DB = originalDB
		sqlDB.Close()
	}

	return gormDB, mock, cleanup
}

func SetupTestRouter() *gin.Engine {
	r := gin.New()
	return r
}

// InitTestMain puts gin in test mode, silences the app logger and sets the
// JWT secret used by AuthHeader.
func InitTestMain() {
	gin.SetMode(gin.TestMode)
	utils.Logger.SetOutput(io.Discard)
	os.Setenv("JWT_SECRET", JWTSecret)
}

// AuthHeader returns a bearer header for a token issued to user.
func AuthHeader(t *testing.T, user models.User) string {
	t.Helper()
	token, _, err := utils.GenerateJWT(user, time.Hour)
	if err != nil {
		t.Fatalf("Error generating the test token: %s", err)
	}
	return "Bearer " + token
}

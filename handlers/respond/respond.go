// Package respond maps domain errors to HTTP answers and reads the identity
// the auth middleware stored on the request.
package respond

import (
	"errors"
	"net/http"

	"funfans-backend/credits"
	"funfans-backend/media"
	"funfans-backend/models"
	"funfans-backend/payments"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

// ErrForbidden is returned by handlers when the caller may not touch a resource.
var ErrForbidden = errors.New("forbidden")

// Status returns the HTTP status matching err.
func Status(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, credits.ErrItemUnavailable),
		errors.Is(err, payments.ErrNoSubscription):
		return http.StatusNotFound
	case errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, store.ErrConflict),
		errors.Is(err, credits.ErrAlreadyUnlocked),
		errors.Is(err, credits.ErrPurchaseInFlight),
		errors.Is(err, credits.ErrDuplicateCredit),
		errors.Is(err, payments.ErrAlreadyProcessed):
		return http.StatusConflict
	case errors.Is(err, credits.ErrInsufficientBalance),
		errors.Is(err, store.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, credits.ErrInvalidAmount),
		errors.Is(err, credits.ErrInvalidCommission),
		errors.Is(err, payments.ErrInvalidSignature),
		errors.Is(err, media.ErrUnsupportedType),
		errors.Is(err, media.ErrTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, credits.ErrOwnItem),
		errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, payments.ErrDisabled),
		errors.Is(err, media.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Error answers {"error": ...} with the status matching err. Server errors
// are logged and their details are not sent to the client.
func Error(c *gin.Context, err error, message string) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		utils.LogErrorWithUser(UserID(c), err, message)
		c.JSON(code, gin.H{"error": message})
		return
	}
	c.JSON(code, gin.H{"error": message + ": " + err.Error()})
}

// UserID returns the authenticated user id, or "" on public routes.
func UserID(c *gin.Context) string {
	return c.GetString("user_id")
}

func Role(c *gin.Context) models.Role {
	return models.Role(c.GetString("role"))
}

package stripe

import (
	"errors"
	"io"
	"net/http"

	"funfans-backend/handlers/respond"
	"funfans-backend/payments"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = int64(65536)

// @Summary Stripe webhook
// @Description Verified Stripe notifications. A completed checkout grants its credits or plan once.
// @Tags store
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]string "message"
// @Failure 400 {object} map[string]string "error: Signature verification failed"
// @Router /stripe/webhook [post]
func (h *Handler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to read the request body"})
		return
	}

	ev, err := h.payments.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	switch {
	case errors.Is(err, payments.ErrAlreadyProcessed):
		// Stripe retries deliveries; a replay is acknowledged so it stops.
		c.JSON(http.StatusOK, gin.H{"message": "Already processed"})
		return
	case err != nil:
		if errors.Is(err, payments.ErrInvalidSignature) {
			utils.LogError(err, "Stripe webhook rejected")
		}
		respond.Error(c, err, "Webhook not applied")
		return
	}

	if ev.Kind == payments.EventIgnored {
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
		return
	}
	utils.LogSuccess("Stripe event " + ev.Type + " applied")
	c.JSON(http.StatusOK, gin.H{"message": "Event processed"})
}

package stripe

import (
	"net/http"

	"funfans-backend/handlers/respond"
	"funfans-backend/models"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List subscription plans
// @Tags subscriptions
// @Produce json
// @Success 200 {array} models.SubscriptionPlan
// @Router /subscriptions/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.store.ListPlans(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error retrieving plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// @Summary Subscribe to a plan
// @Description Free plans are applied at once. Paid plans return a Stripe Checkout session and are applied when Stripe confirms the payment.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body models.AssignPlan true "Plan"
// @Success 200 {object} payments.SubscribeResult
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Failure 503 {object} map[string]string "error: Payments are not configured"
// @Router /subscriptions [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var input models.AssignPlan
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	result, err := h.payments.Subscribe(c.Request.Context(), respond.UserID(c), input.PlanID)
	if err != nil {
		respond.Error(c, err, "Error subscribing")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary My subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserSubscription
// @Failure 404 {object} map[string]string "error: No subscription"
// @Router /subscriptions/me [get]
func (h *Handler) CurrentSubscription(c *gin.Context) {
	sub, err := h.store.GetUserSubscription(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "No subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// @Summary Cancel my subscription
// @Description Cancel the Stripe subscription, then remove it locally
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Subscription canceled successfully"
// @Failure 404 {object} map[string]string "error: No subscription"
// @Failure 500 {object} map[string]string "error: Error when canceling the Stripe subscription"
// @Router /subscriptions/me [delete]
func (h *Handler) CancelSubscription(c *gin.Context) {
	if err := h.payments.Cancel(c.Request.Context(), respond.UserID(c)); err != nil {
		respond.Error(c, err, "Error when canceling the subscription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled successfully"})
}

package stripe

import (
	"net/http"

	"funfans-backend/handlers/respond"

	"github.com/gin-gonic/gin"
)

// @Summary List credit packages
// @Tags store
// @Produce json
// @Success 200 {array} models.CreditPackage
// @Router /store/packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	packages, err := h.store.ListPackages(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error retrieving packages")
		return
	}
	c.JSON(http.StatusOK, packages)
}

// @Summary Buy a credit package
// @Description Start a Stripe Checkout payment. Credits are granted when Stripe confirms the payment.
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} map[string]string "sessionId, url"
// @Failure 404 {object} map[string]string "error: Package not found"
// @Failure 503 {object} map[string]string "error: Payments are not configured"
// @Router /store/packages/{id}/checkout [post]
func (h *Handler) CheckoutPackage(c *gin.Context) {
	cs, err := h.payments.CheckoutPackage(c.Request.Context(), respond.UserID(c), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Error creating the checkout session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": cs.ID, "url": cs.URL})
}

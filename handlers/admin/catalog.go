package admin

import (
	"net/http"
	"strings"

	"funfans-backend/handlers/respond"
	"funfans-backend/models"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Assign a plan to a user
// @Description Apply a plan without payment. A later assignment replaces an earlier one.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param plan body models.AssignPlan true "Plan"
// @Success 200 {object} models.UserSubscription
// @Failure 404 {object} map[string]interface{} "error: User or plan not found"
// @Router /admin/users/{id}/subscription [put]
func (h *Handler) AssignPlan(c *gin.Context) {
	var input models.AssignPlan
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	sub, err := h.payments.AssignPlan(c.Request.Context(), c.Param("id"), input.PlanID)
	if err != nil {
		respond.Error(c, err, "Error assigning plan")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// @Summary Cancel a user plan
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} map[string]interface{} "error: No subscription"
// @Router /admin/users/{id}/subscription [delete]
func (h *Handler) CancelPlan(c *gin.Context) {
	if err := h.payments.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, err, "Error cancelling plan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled"})
}

// @Summary Update a plan
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param plan body models.PlanUpdate true "Fields to update"
// @Success 200 {object} models.SubscriptionPlan
// @Failure 400 {object} map[string]interface{} "error: Invalid plan"
// @Failure 404 {object} map[string]interface{} "error: Plan not found"
// @Router /admin/plans/{id} [put]
func (h *Handler) UpdatePlan(c *gin.Context) {
	var input models.PlanUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	plan, err := h.store.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Plan not found")
		return
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The plan name cannot be empty"})
			return
		}
		plan.Name = name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The price cannot be negative"})
			return
		}
		plan.Price = *input.Price
	}
	if input.Credits != nil {
		plan.Credits = *input.Credits
	}
	if input.Features != nil {
		plan.Features = input.Features
	}
	if input.StripeProductID != nil {
		plan.StripeProductID = strings.TrimSpace(*input.StripeProductID)
	}

	if err := h.store.SavePlan(c.Request.Context(), plan); err != nil {
		respond.Error(c, err, "Error saving plan")
		return
	}
	utils.LogSuccessWithUser(respond.UserID(c), "Plan "+plan.ID+" updated")
	c.JSON(http.StatusOK, plan)
}

// @Summary Update a credit package
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param package body models.PackageUpdate true "Fields to update"
// @Success 200 {object} models.CreditPackage
// @Failure 400 {object} map[string]interface{} "error: Invalid package"
// @Failure 404 {object} map[string]interface{} "error: Package not found"
// @Router /admin/packages/{id} [put]
func (h *Handler) UpdatePackage(c *gin.Context) {
	var input models.PackageUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	pkg, err := h.store.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Package not found")
		return
	}

	if input.Credits != nil {
		pkg.Credits = *input.Credits
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The price must be greater than 0"})
			return
		}
		pkg.Price = *input.Price
	}
	if input.Bonus != nil {
		pkg.Bonus = *input.Bonus
	}
	if input.BestValue != nil {
		pkg.BestValue = *input.BestValue
	}
	if input.StripeProductID != nil {
		pkg.StripeProductID = strings.TrimSpace(*input.StripeProductID)
	}

	if err := h.store.SavePackage(c.Request.Context(), pkg); err != nil {
		respond.Error(c, err, "Error saving package")
		return
	}
	utils.LogSuccessWithUser(respond.UserID(c), "Package "+pkg.ID+" updated")
	c.JSON(http.StatusOK, pkg)
}

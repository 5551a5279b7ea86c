package admin

import (
	"net/http"

	"funfans-backend/handlers/respond"
	"funfans-backend/models"
	"funfans-backend/utils"
	mailsmodels "funfans-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
)

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error retrieving users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Set a user role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param role body models.RoleUpdate true "Role"
// @Success 200 {object} map[string]interface{} "id, role"
// @Failure 400 {object} map[string]interface{} "error: Invalid role"
// @Router /admin/users/{id}/role [put]
func (h *Handler) SetRole(c *gin.Context) {
	var input models.RoleUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}
	if !input.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	if err := h.store.SetUserRole(c.Request.Context(), c.Param("id"), input.Role); err != nil {
		respond.Error(c, err, "Error updating role")
		return
	}

	utils.LogSuccessWithUser(respond.UserID(c), "Role of "+c.Param("id")+" set to "+string(input.Role))
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "role": input.Role})
}

// @Summary Grant credits
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param grant body models.CreditGrant true "Amount"
// @Success 200 {object} credits.Grant
// @Failure 400 {object} map[string]interface{} "error: Invalid amount"
// @Failure 404 {object} map[string]interface{} "error: User not found"
// @Router /admin/users/{id}/credits [post]
func (h *Handler) GrantCredits(c *gin.Context) {
	var input models.CreditGrant
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	grant, err := h.credits.AdminGrant(c.Request.Context(), c.Param("id"), input.Amount)
	if err != nil {
		respond.Error(c, err, "Error granting credits")
		return
	}

	utils.LogSuccessWithUser(respond.UserID(c), "Credits granted to "+c.Param("id"))
	c.JSON(http.StatusOK, grant)
}

// @Summary Time a user out
// @Description Block every authenticated route of the user until the timeout ends
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param timeout body models.TimeoutCreate true "Duration and message"
// @Success 200 {object} models.UserTimeout
// @Failure 404 {object} map[string]interface{} "error: User not found"
// @Router /admin/users/{id}/timeout [post]
func (h *Handler) SetTimeout(c *gin.Context) {
	var input models.TimeoutCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "User not found")
		return
	}

	timeout := models.UserTimeout{
		UserID:  user.ID,
		EndTime: h.now().Add(input.Duration()),
		Message: input.Message,
	}
	if err := h.store.SaveTimeout(c.Request.Context(), &timeout); err != nil {
		respond.Error(c, err, "Error saving timeout")
		return
	}

	if err := h.mailer.SendMail(user.Email, mailsmodels.TimeoutNotice(timeout.Message, timeout.EndTime)); err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error sending the timeout notice")
	}

	utils.LogSuccessWithUser(respond.UserID(c), "User "+user.ID+" timed out")
	c.JSON(http.StatusOK, timeout)
}

// @Summary Lift a timeout
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{} "message"
// @Router /admin/users/{id}/timeout [delete]
func (h *Handler) LiftTimeout(c *gin.Context) {
	timeout, err := h.store.GetTimeout(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "No timeout for this user")
		return
	}

	timeout.EndTime = h.now()
	if err := h.store.SaveTimeout(c.Request.Context(), timeout); err != nil {
		respond.Error(c, err, "Error saving timeout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timeout lifted"})
}

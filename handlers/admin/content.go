package admin

import (
	"net/http"

	"funfans-backend/handlers/respond"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Toggle content visibility
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "id, isHidden"
// @Failure 404 {object} map[string]interface{} "error: Content not found"
// @Router /admin/content/{id}/visibility [post]
func (h *Handler) ToggleVisibility(c *gin.Context) {
	id := c.Param("id")
	var hidden bool
	err := h.store.InTx(c.Request.Context(), func(tx store.Store) error {
		item, err := tx.LockContent(c.Request.Context(), id)
		if err != nil {
			return err
		}
		hidden = !item.IsHidden
		return tx.SetContentHidden(c.Request.Context(), id, hidden)
	})
	if err != nil {
		respond.Error(c, err, "Error updating content")
		return
	}

	utils.LogSuccessWithUser(respond.UserID(c), "Content "+id+" visibility changed")
	c.JSON(http.StatusOK, gin.H{"id": id, "isHidden": hidden})
}

// @Summary Remove a content item
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} map[string]interface{} "error: Content not found"
// @Router /admin/content/{id} [delete]
func (h *Handler) RemoveContent(c *gin.Context) {
	if err := h.store.DeleteContent(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, err, "Error removing content")
		return
	}
	utils.LogSuccessWithUser(respond.UserID(c), "Content "+c.Param("id")+" removed")
	c.JSON(http.StatusOK, gin.H{"message": "Content removed"})
}

// @Summary Hide every item of a creator
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Creator ID"
// @Success 200 {object} map[string]interface{} "hidden: number of items"
// @Router /admin/creators/{id}/hide [post]
func (h *Handler) HideCreatorContent(c *gin.Context) {
	n, err := h.store.HideCreatorContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Error hiding content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hidden": n})
}

// @Summary Delete every item of a creator
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Creator ID"
// @Success 200 {object} map[string]interface{} "deleted: number of items"
// @Router /admin/creators/{id}/content [delete]
func (h *Handler) DeleteCreatorContent(c *gin.Context) {
	n, err := h.store.DeleteCreatorContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Error deleting content")
		return
	}
	utils.LogSuccessWithUser(respond.UserID(c), "All content of creator "+c.Param("id")+" deleted")
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// @Summary List reports
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Report
// @Router /admin/reports [get]
func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.store.ListReports(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error retrieving reports")
		return
	}
	c.JSON(http.StatusOK, reports)
}

// @Summary Set the showcase
// @Description Replace the ordered list of highlighted creators
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param showcase body models.ShowcaseUpdate true "Creator IDs in order"
// @Success 200 {object} map[string]interface{} "userIds"
// @Failure 404 {object} map[string]interface{} "error: Unknown user"
// @Router /admin/showcase [put]
func (h *Handler) SetShowcase(c *gin.Context) {
	var input models.ShowcaseUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}
	if err := h.store.SetShowcase(c.Request.Context(), input.UserIDs); err != nil {
		respond.Error(c, err, "Error saving showcase")
		return
	}
	ids, err := h.store.GetShowcase(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error retrieving showcase")
		return
	}
	c.JSON(http.StatusOK, gin.H{"userIds": ids})
}

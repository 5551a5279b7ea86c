package admin

import (
	"errors"
	"net/http"

	"funfans-backend/credits"
	"funfans-backend/handlers/respond"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

// applySettings merges u into s and checks the result.
func applySettings(s models.PlatformSettings, u models.SettingsUpdate) (models.PlatformSettings, error) {
	if u.PlatformCommission != nil {
		if err := credits.ValidateCommission(*u.PlatformCommission); err != nil {
			return s, err
		}
		s.PlatformCommission = *u.PlatformCommission
	}
	if u.CreditValueUSD != nil {
		if !u.CreditValueUSD.IsPositive() {
			return s, errors.New("creditValueUSD must be greater than 0")
		}
		s.CreditValueUSD = *u.CreditValueUSD
	}
	if u.WithdrawalCooldownHours != nil {
		if *u.WithdrawalCooldownHours < 0 {
			return s, errors.New("withdrawalCooldownHours cannot be negative")
		}
		s.WithdrawalCooldownHours = *u.WithdrawalCooldownHours
	}
	if u.MaxImagesPerCard != nil {
		if *u.MaxImagesPerCard < 0 {
			return s, errors.New("maxImagesPerCard cannot be negative")
		}
		s.MaxImagesPerCard = *u.MaxImagesPerCard
	}
	if u.MaxVideosPerCard != nil {
		if *u.MaxVideosPerCard < 0 {
			return s, errors.New("maxVideosPerCard cannot be negative")
		}
		s.MaxVideosPerCard = *u.MaxVideosPerCard
	}
	if u.CommentsEnabled != nil {
		s.CommentsEnabled = *u.CommentsEnabled
	}
	return s, nil
}

// @Summary Get platform settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PlatformSettings
// @Router /admin/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error loading platform settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Update platform settings
// @Description Partial update. Past sales keep the commission they were recorded with.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body models.SettingsUpdate true "Fields to update"
// @Success 200 {object} models.PlatformSettings
// @Failure 400 {object} map[string]interface{} "error: Invalid settings"
// @Router /admin/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var input models.SettingsUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	var updated models.PlatformSettings
	var invalid error
	err := h.store.InTx(c.Request.Context(), func(tx store.Store) error {
		current, err := tx.LockSettings(c.Request.Context())
		if err != nil {
			return err
		}
		updated, invalid = applySettings(*current, input)
		if invalid != nil {
			return invalid
		}
		return tx.SaveSettings(c.Request.Context(), &updated)
	})
	if invalid != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings: " + invalid.Error()})
		return
	}
	if err != nil {
		respond.Error(c, err, "Error saving platform settings")
		return
	}

	utils.LogSuccessWithUser(respond.UserID(c), "Platform settings updated")
	c.JSON(http.StatusOK, updated)
}

// @Summary Update sidebar visibility
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sidebar body models.SidebarUpdate true "Flags to update"
// @Success 200 {object} models.SidebarVisibility
// @Router /admin/settings/sidebar [put]
func (h *Handler) UpdateSidebar(c *gin.Context) {
	var input models.SidebarUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	var sidebar models.SidebarVisibility
	err := h.store.InTx(c.Request.Context(), func(tx store.Store) error {
		settings, err := tx.LockSettings(c.Request.Context())
		if err != nil {
			return err
		}
		settings.Sidebar = input.Apply(settings.Sidebar)
		sidebar = settings.Sidebar
		return tx.SaveSettings(c.Request.Context(), settings)
	})
	if err != nil {
		respond.Error(c, err, "Error saving platform settings")
		return
	}

	utils.LogSuccessWithUser(respond.UserID(c), "Sidebar visibility updated")
	c.JSON(http.StatusOK, sidebar)
}

package ping

import (
	"net/http"
	"time"

	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store store.Store
	now   func() time.Time
}

func New(s store.Store) *Handler {
	return &Handler{store: s, now: time.Now}
}

// HandlePing answers pong once the store can serve the platform settings.
// @Summary Ping test
// @Description Health check: answers pong when the database is reachable
// @Tags test
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /ping [get]
func (h *Handler) HandlePing(c *gin.Context) {
	if _, err := h.store.GetSettings(c.Request.Context()); err != nil {
		utils.LogError(err, "Ping: store unavailable")
		utils.SendError(c, http.StatusServiceUnavailable, "Store unavailable")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Ping successful", gin.H{
		"message": "pong",
		"time":    h.now().UTC(),
	})
}

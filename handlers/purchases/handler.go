package purchases

import (
	"net/http"
	"sort"

	"funfans-backend/access"
	"funfans-backend/credits"
	"funfans-backend/handlers/respond"
	"funfans-backend/models"
	"funfans-backend/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store   store.Store
	credits *credits.Service
}

func New(s store.Store, c *credits.Service) *Handler {
	return &Handler{store: s, credits: c}
}

// @Summary Buy a content item
// @Description Debit the item price, credit the creator and unlock the item in one transaction
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} credits.Receipt
// @Failure 402 {object} map[string]interface{} "error: Insufficient balance"
// @Failure 403 {object} map[string]interface{} "error: Own item"
// @Failure 404 {object} map[string]interface{} "error: Item not found"
// @Failure 409 {object} map[string]interface{} "error: Already unlocked or purchase in progress"
// @Router /content/{id}/purchase [post]
func (h *Handler) Purchase(c *gin.Context) {
	receipt, err := h.credits.Purchase(c.Request.Context(), respond.UserID(c), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Purchase refused")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// @Summary My wallet
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "balance, unlockedContent"
// @Router /wallet [get]
func (h *Handler) Wallet(c *gin.Context) {
	wallet, err := h.credits.Wallet(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error retrieving wallet")
		return
	}
	unlocked := wallet.Unlocked()
	sort.Strings(unlocked)
	c.JSON(http.StatusOK, gin.H{
		"balance":         wallet.Balance,
		"unlockedContent": unlocked,
	})
}

// @Summary My transactions
// @Description Credit history, newest first
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Transaction
// @Router /transactions [get]
func (h *Handler) Transactions(c *gin.Context) {
	txs, err := h.store.ListTransactions(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error retrieving transactions")
		return
	}
	c.JSON(http.StatusOK, txs)
}

// @Summary My purchases
// @Description Items the user has unlocked. Hidden items are only listed for admins.
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContentItem
// @Router /purchases [get]
func (h *Handler) MyPurchases(c *gin.Context) {
	ids, err := h.store.ListUnlocked(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error retrieving purchases")
		return
	}

	admin := respond.Role(c) == models.RoleDeveloper
	items := make([]models.ContentItem, 0, len(ids))
	for _, id := range ids {
		item, err := h.store.GetContent(c.Request.Context(), id)
		if err != nil {
			// Items removed by moderation stay unlocked but are no longer listed.
			continue
		}
		if item.IsHidden && !admin {
			continue
		}
		items = append(items, *item)
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Claim an ad reward
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} credits.Grant
// @Router /rewards [post]
func (h *Handler) Reward(c *gin.Context) {
	grant, err := h.credits.Reward(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error crediting reward")
		return
	}
	c.JSON(http.StatusOK, grant)
}

// @Summary Creator payouts
// @Description Earned credits, their USD value and the sales history
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} credits.PayoutSummary
// @Router /payouts [get]
func (h *Handler) Payouts(c *gin.Context) {
	summary, err := h.credits.Payouts(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error retrieving payouts")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary My capabilities
// @Description Features available to the caller under the current sidebar settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "role, capabilities"
// @Router /capabilities [get]
func (h *Handler) Capabilities(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error loading platform settings")
		return
	}
	role := respond.Role(c)
	c.JSON(http.StatusOK, gin.H{
		"role":         role,
		"capabilities": access.ResolveVisibility(role, settings.Sidebar).List(),
	})
}

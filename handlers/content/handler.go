package content

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"funfans-backend/handlers/respond"
	"funfans-backend/media"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

// DeleteDelay is how long a creator must wait before removing an item.
const DeleteDelay = 24 * time.Hour

const maxBlurLevel = 10

type Handler struct {
	store    store.Store
	uploader media.Uploader
	now      func() time.Time
}

func New(s store.Store, uploader media.Uploader) *Handler {
	return &Handler{store: s, uploader: uploader, now: time.Now}
}

// @Summary Create a content item
// @Description Create a sellable card from uploaded images and videos. Tags are comma separated.
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param price formData int true "Price in credits"
// @Param offerText formData string false "Offer text"
// @Param blurLevel formData int false "Blur level from 0 to 10"
// @Param externalLink formData string false "External link"
// @Param tags formData string false "Comma separated tags"
// @Param media formData file true "Images and videos"
// @Success 201 {object} models.ContentItem
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 403 {object} map[string]interface{} "error: Feature not available"
// @Router /content [post]
func (h *Handler) CreateContent(c *gin.Context) {
	userID := respond.UserID(c)

	title := strings.TrimSpace(c.Request.FormValue("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	price, err := strconv.ParseInt(strings.TrimSpace(c.Request.FormValue("price")), 10, 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative integer"})
		return
	}

	blurLevel := 0
	if raw := strings.TrimSpace(c.Request.FormValue("blurLevel")); raw != "" {
		blurLevel, err = strconv.Atoi(raw)
		if err != nil || blurLevel < 0 || blurLevel > maxBlurLevel {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Blur level must be between 0 and 10"})
			return
		}
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["media"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image or video is required"})
		return
	}
	files := form.File["media"]

	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error loading platform settings")
		return
	}

	kinds, count, err := classify(files)
	if err != nil {
		respond.Error(c, err, "Invalid media")
		return
	}
	if count.Images > settings.MaxImagesPerCard {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many images, the limit is " + strconv.Itoa(settings.MaxImagesPerCard)})
		return
	}
	if count.Videos > settings.MaxVideosPerCard {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many videos, the limit is " + strconv.Itoa(settings.MaxVideosPerCard)})
		return
	}

	item := models.ContentItem{
		CreatorID:    userID,
		Title:        title,
		Price:        price,
		OfferText:    strings.TrimSpace(c.Request.FormValue("offerText")),
		BlurLevel:    blurLevel,
		ExternalLink: strings.TrimSpace(c.Request.FormValue("externalLink")),
		TagNames:     store.NormalizeTags(strings.Split(c.Request.FormValue("tags"), ",")),
		MediaType:    kinds[0],
		MediaCount:   count,
	}

	for i, file := range files {
		url, err := h.uploader.Upload(c.Request.Context(), file, "content")
		if err != nil {
			respond.Error(c, err, "Error uploading media")
			return
		}
		item.Media = append(item.Media, models.ContentMedia{URL: url, Kind: kinds[i]})
		if item.ImageURL == "" && kinds[i] == models.MediaImage {
			item.ImageURL = url
		}
	}
	if item.ImageURL == "" {
		item.ImageURL = item.Media[0].URL
	}

	if err := h.store.CreateContent(c.Request.Context(), &item); err != nil {
		respond.Error(c, err, "Error creating content")
		return
	}

	utils.LogSuccessWithUser(userID, "Content "+item.ID+" created")
	c.JSON(http.StatusCreated, item)
}

func classify(files []*multipart.FileHeader) ([]models.MediaKind, models.MediaCount, error) {
	var count models.MediaCount
	kinds := make([]models.MediaKind, len(files))
	for i, file := range files {
		kind, err := media.Validate(file)
		if err != nil {
			return nil, count, err
		}
		kinds[i] = kind
		if kind == models.MediaVideo {
			count.Videos++
		} else {
			count.Images++
		}
	}
	return kinds, count, nil
}

// @Summary List content
// @Description Items newest first. Hidden items are only listed for admins.
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param tag query string false "Tag filter"
// @Param creator query string false "Creator ID filter"
// @Success 200 {array} models.ContentItem
// @Router /content [get]
func (h *Handler) ListContent(c *gin.Context) {
	filter := models.ContentFilter{
		IncludeHidden: respond.Role(c) == models.RoleDeveloper,
		Tag:           c.Query("tag"),
		CreatorID:     c.Query("creator"),
	}

	items, err := h.store.ListContent(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, err, "Error retrieving content")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary My creations
// @Description Items of the authenticated creator. Hidden items are only listed for admins.
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContentItem
// @Router /content/mine [get]
func (h *Handler) MyCreations(c *gin.Context) {
	items, err := h.store.ListContent(c.Request.Context(), models.ContentFilter{
		CreatorID:     respond.UserID(c),
		IncludeHidden: respond.Role(c) == models.RoleDeveloper,
	})
	if err != nil {
		respond.Error(c, err, "Error retrieving content")
		return
	}
	c.JSON(http.StatusOK, items)
}

// item loads a content item the caller may see. Hidden items are only
// visible to their creator and to admins.
func (h *Handler) item(c *gin.Context) (*models.ContentItem, bool) {
	item, err := h.store.GetContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Content not found")
		return nil, false
	}
	if item.IsHidden && item.CreatorID != respond.UserID(c) && respond.Role(c) != models.RoleDeveloper {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return nil, false
	}
	return item, true
}

// @Summary Get a content item
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "item, unlocked"
// @Failure 404 {object} map[string]interface{} "error: Content not found"
// @Router /content/{id} [get]
func (h *Handler) GetContent(c *gin.Context) {
	item, ok := h.item(c)
	if !ok {
		return
	}

	unlocked := item.CreatorID == respond.UserID(c)
	if !unlocked {
		var err error
		unlocked, err = h.store.IsUnlocked(c.Request.Context(), respond.UserID(c), item.ID)
		if err != nil {
			respond.Error(c, err, "Error retrieving content")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"item": item, "unlocked": unlocked})
}

// @Summary Delete my content item
// @Description Creators may delete their own items once they are 24 hours old
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 403 {object} map[string]interface{} "error: Not allowed"
// @Failure 404 {object} map[string]interface{} "error: Content not found"
// @Router /content/{id} [delete]
func (h *Handler) DeleteContent(c *gin.Context) {
	item, ok := h.item(c)
	if !ok {
		return
	}

	if item.CreatorID != respond.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own content"})
		return
	}
	if h.now().Sub(item.CreatedAt) < DeleteDelay {
		c.JSON(http.StatusForbidden, gin.H{
			"error":       "Content can only be deleted 24 hours after publication",
			"deletableAt": item.CreatedAt.Add(DeleteDelay),
		})
		return
	}

	if err := h.store.DeleteContent(c.Request.Context(), item.ID); err != nil {
		respond.Error(c, err, "Error deleting content")
		return
	}

	utils.LogSuccessWithUser(respond.UserID(c), "Content "+item.ID+" deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}

// @Summary Like or unlike
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "liked"
// @Router /content/{id}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	item, ok := h.item(c)
	if !ok {
		return
	}
	liked, err := h.store.ToggleLike(c.Request.Context(), item.ID, respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error toggling like")
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// @Summary React to a content item
// @Description The same emoji again removes the reaction, another emoji replaces it
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Param reaction body models.ReactionCreate true "Emoji"
// @Success 200 {object} map[string]interface{} "emoji"
// @Router /content/{id}/reaction [post]
func (h *Handler) React(c *gin.Context) {
	var input models.ReactionCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}
	item, ok := h.item(c)
	if !ok {
		return
	}
	emoji, err := h.store.ToggleReaction(c.Request.Context(), item.ID, respond.UserID(c), strings.TrimSpace(input.Emoji))
	if err != nil {
		respond.Error(c, err, "Error saving reaction")
		return
	}
	c.JSON(http.StatusOK, gin.H{"emoji": emoji})
}

// @Summary Share a content item
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "message"
// @Router /content/{id}/share [post]
func (h *Handler) Share(c *gin.Context) {
	item, ok := h.item(c)
	if !ok {
		return
	}
	if err := h.store.AddShare(c.Request.Context(), item.ID, respond.UserID(c)); err != nil {
		respond.Error(c, err, "Error sharing content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Content shared"})
}

// @Summary List comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {array} models.Comment
// @Router /content/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	item, ok := h.item(c)
	if !ok {
		return
	}
	comments, err := h.store.ListComments(c.Request.Context(), item.ID)
	if err != nil {
		respond.Error(c, err, "Error retrieving comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// @Summary Comment a content item
// @Description Only available while comments are enabled in the platform settings
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Param comment body models.CommentCreate true "Comment"
// @Success 201 {object} models.Comment
// @Failure 403 {object} map[string]interface{} "error: Comments are disabled"
// @Router /content/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var input models.CommentCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error loading platform settings")
		return
	}
	if !settings.CommentsEnabled {
		c.JSON(http.StatusForbidden, gin.H{"error": "Comments are disabled"})
		return
	}

	item, ok := h.item(c)
	if !ok {
		return
	}

	comment := models.Comment{
		ContentID: item.ID,
		UserID:    respond.UserID(c),
		Content:   strings.TrimSpace(input.Content),
	}
	if comment.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The comment cannot be empty"})
		return
	}
	if err := h.store.AddComment(c.Request.Context(), &comment); err != nil {
		respond.Error(c, err, "Error creating comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// @Summary Report a content item
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Param report body models.ReportCreate true "Reason"
// @Success 201 {object} models.Report
// @Failure 400 {object} map[string]interface{} "error: Invalid reason"
// @Router /content/{id}/report [post]
func (h *Handler) Report(c *gin.Context) {
	var input models.ReportCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}
	if !input.Reason.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report reason"})
		return
	}

	item, ok := h.item(c)
	if !ok {
		return
	}

	report := models.Report{
		ContentID:  item.ID,
		ReportedBy: respond.UserID(c),
		Reason:     input.Reason,
	}
	if err := h.store.CreateReport(c.Request.Context(), &report); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "You already reported this content"})
			return
		}
		respond.Error(c, err, "Error creating report")
		return
	}
	utils.LogInfo("Content " + item.ID + " reported for " + string(input.Reason))
	c.JSON(http.StatusCreated, report)
}

// @Summary List tags
// @Description Tags with the number of visible items carrying them
// @Tags content
// @Produce json
// @Success 200 {array} models.TagCount
// @Router /tags [get]
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.store.ListTags(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error retrieving tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

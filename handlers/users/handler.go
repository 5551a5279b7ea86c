package users

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"funfans-backend/handlers/respond"
	"funfans-backend/media"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type Handler struct {
	store          store.Store
	uploader       media.Uploader
	vitrineBaseURL string
}

func New(s store.Store, uploader media.Uploader, vitrineBaseURL string) *Handler {
	return &Handler{store: s, uploader: uploader, vitrineBaseURL: strings.TrimRight(vitrineBaseURL, "/")}
}

// @Summary Get my profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]interface{} "error: User not found"
// @Router /users/me [get]
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error retrieving user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Update my profile
// @Description Partial update; omitted fields are left untouched
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserUpdate true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 409 {object} map[string]interface{} "error: Vitrine slug already taken"
// @Router /users/me [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var input models.UserUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error retrieving user")
		return
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The username cannot be empty"})
			return
		}
		user.Username = username
	}
	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.VitrineSlug != nil {
		slug := strings.ToLower(strings.TrimSpace(*input.VitrineSlug))
		if !slugPattern.MatchString(slug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The vitrine slug may only contain lowercase letters, digits, '-' and '_'"})
			return
		}
		user.VitrineSlug = slug
	}

	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "This vitrine slug is already taken"})
			return
		}
		respond.Error(c, err, "Error updating user")
		return
	}

	utils.LogSuccessWithUser(user.ID, "Profile updated")
	c.JSON(http.StatusOK, user)
}

// @Summary Upload my profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param picture formData file true "Image file"
// @Success 200 {object} map[string]interface{} "message, profilePictureUrl"
// @Failure 400 {object} map[string]interface{} "error: Invalid file"
// @Router /users/me/picture [post]
func (h *Handler) UploadPicture(c *gin.Context) {
	file, err := c.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Picture is required"})
		return
	}
	kind, err := media.Validate(file)
	if err != nil {
		respond.Error(c, err, "Invalid picture")
		return
	}
	if kind != models.MediaImage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The profile picture must be an image"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error retrieving user")
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), file, "profile_pictures")
	if err != nil {
		respond.Error(c, err, "Error uploading picture")
		return
	}

	user.ProfilePictureURL = url
	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		respond.Error(c, err, "Error updating user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Profile picture updated",
		"profilePictureUrl": url,
	})
}

// @Summary Follow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{} "message, following"
// @Failure 400 {object} map[string]interface{} "error: Cannot follow yourself"
// @Failure 404 {object} map[string]interface{} "error: User not found"
// @Router /users/{id}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	userID := respond.UserID(c)
	target := c.Param("id")
	if target == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself"})
		return
	}

	if err := h.store.Follow(c.Request.Context(), userID, target); err != nil {
		respond.Error(c, err, "Error following user")
		return
	}
	h.answerGraph(c, userID, "Followed")
}

// @Summary Unfollow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{} "message, following"
// @Router /users/{id}/follow [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	userID := respond.UserID(c)
	if err := h.store.Unfollow(c.Request.Context(), userID, c.Param("id")); err != nil {
		respond.Error(c, err, "Error unfollowing user")
		return
	}
	h.answerGraph(c, userID, "Unfollowed")
}

func (h *Handler) answerGraph(c *gin.Context, userID, message string) {
	following, err := h.store.Following(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err, "Error retrieving follows")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "following": following})
}

// @Summary Get my vitrine share link
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "url"
// @Router /users/me/share-link [get]
func (h *Handler) ShareLink(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), respond.UserID(c))
	if err != nil {
		respond.Error(c, err, "Error retrieving user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.vitrineBaseURL + "/" + user.VitrineSlug})
}

// @Summary Public vitrine
// @Description Public profile of a creator and their visible items
// @Tags users
// @Produce json
// @Param slug path string true "Vitrine slug"
// @Success 200 {object} map[string]interface{} "user, items"
// @Failure 404 {object} map[string]interface{} "error: Vitrine not found"
// @Router /vitrine/{slug} [get]
func (h *Handler) Vitrine(c *gin.Context) {
	user, err := h.store.GetUserBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respond.Error(c, err, "Vitrine not found")
		return
	}

	items, err := h.store.ListContent(c.Request.Context(), models.ContentFilter{CreatorID: user.ID})
	if err != nil {
		respond.Error(c, err, "Error retrieving items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.Public(),
		"items": items,
	})
}

// @Summary Showcase
// @Description Creators highlighted by the admins, in order
// @Tags users
// @Produce json
// @Success 200 {array} models.PublicUser
// @Router /showcase [get]
func (h *Handler) Showcase(c *gin.Context) {
	ids, err := h.store.GetShowcase(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error retrieving showcase")
		return
	}

	creators := make([]models.PublicUser, 0, len(ids))
	for _, id := range ids {
		user, err := h.store.GetUser(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			respond.Error(c, err, "Error retrieving showcase")
			return
		}
		creators = append(creators, user.Public())
	}
	c.JSON(http.StatusOK, creators)
}

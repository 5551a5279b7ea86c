package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"funfans-backend/credits"
	"funfans-backend/handlers/respond"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/utils"
	mailsmodels "funfans-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 15 * time.Minute

type Options struct {
	TokenTTL       time.Duration
	SignupBonus    int64
	VitrineBaseURL string
}

type Handler struct {
	store   store.Store
	credits *credits.Service
	mailer  utils.Mailer
	opts    Options
	now     func() time.Time
}

func New(s store.Store, c *credits.Service, mailer utils.Mailer, opts Options) *Handler {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	return &Handler{store: s, credits: c, mailer: mailer, opts: opts, now: time.Now}
}

// @Summary Create a new user
// @Description Create an account. The username defaults to the local part of the email and the vitrine slug to the user id.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "User information"
// @Success 201 {object} map[string]interface{} "message: User created successfully, user: created user"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 409 {object} map[string]interface{} "error: Email already exists"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var input models.UserCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Password complexity
	hasLower := strings.ContainsAny(input.Password, "abcdefghijklmnopqrstuvwxyz")
	hasUpper := strings.ContainsAny(input.Password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	hasDigit := strings.ContainsAny(input.Password, "0123456789")

	if !hasLower || !hasUpper || !hasDigit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The password must contain at least one lowercase, one uppercase and one digit",
		})
		return
	}

	if _, err := h.store.GetUserByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already used"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		respond.Error(c, err, "Error when checking the email existence")
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}

	id := uuid.NewString()
	user := models.User{
		ID:          id,
		Email:       email,
		Password:    passwordHash,
		Role:        models.RoleUser,
		Username:    username,
		VitrineSlug: id,
	}

	var grant *credits.Grant
	err = h.store.InTx(c.Request.Context(), func(tx store.Store) error {
		if err := tx.CreateUser(c.Request.Context(), &user); err != nil {
			return err
		}
		if h.opts.SignupBonus <= 0 {
			return nil
		}
		grant, err = h.credits.CreditTx(c.Request.Context(), tx, credits.CreditRequest{
			UserID:      user.ID,
			Amount:      h.opts.SignupBonus,
			Type:        models.TransactionReward,
			Description: "Signup bonus",
		})
		if err != nil {
			return err
		}
		user.Balance = grant.Balance
		return nil
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already used"})
		return
	}
	if err != nil {
		respond.Error(c, err, "Error creating the user")
		return
	}
	if grant != nil {
		h.credits.PublishGrant(user.ID, grant)
	}

	vitrineURL := h.opts.VitrineBaseURL + "/" + user.VitrineSlug
	if err := h.mailer.SendMail(user.Email, mailsmodels.Welcome(user.Username, vitrineURL)); err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error sending the welcome mail")
	}

	utils.LogSuccessWithUser(user.ID, "User registered")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// @Summary user login
// @Description user login with credential. The balance is loaded from the account, never reset.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserLogin true "User credentials"
// @Success 200 {object} map[string]interface{} "token, expiresAt, user"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 401 {object} map[string]interface{} "error: Wrong credentials"
// @Failure 422 {object} map[string]interface{} "error: JWT not generated"
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var input models.UserLogin
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(input.Email)))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong credentials"})
		return
	}
	if err != nil {
		respond.Error(c, err, "Database error")
		return
	}

	if !samePassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong credentials"})
		return
	}

	token, claims, err := utils.GenerateJWT(*user, h.opts.TokenTTL)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error creating the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in")
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": claims.ExpiresAt,
		"user":      user,
	})
}

// @Summary Logout
// @Description Revoke the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Logged out"
// @Failure 401 {object} map[string]interface{} "error: Unauthorized"
// @Router /logout [post]
func (h *Handler) Logout(c *gin.Context) {
	expiresAt, _ := c.Get("token_expires_at")
	exp, ok := expiresAt.(time.Time)
	if !ok {
		exp = h.now().Add(h.opts.TokenTTL)
	}

	if err := h.store.RevokeToken(c.Request.Context(), c.GetString("jti"), exp); err != nil {
		respond.Error(c, err, "Error revoking the token")
		return
	}

	utils.LogSuccessWithUser(respond.UserID(c), "User logged out")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// @Summary Forgot password
// @Description Email a reset code. The answer is the same whether or not the email is known.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.PasswordForgot true "Account email"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Router /password/forgot [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var input models.PasswordForgot
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	const message = "If this email is registered, a reset code has been sent"

	user, err := h.store.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(input.Email)))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"message": message})
		return
	}
	if err != nil {
		respond.Error(c, err, "Database error")
		return
	}

	code, err := resetCode()
	if err != nil {
		respond.Error(c, err, "Error generating the reset code")
		return
	}
	hash, err := hashPassword(code)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the reset code"})
		return
	}

	expires := h.now().Add(resetCodeTTL)
	user.ResetCodeHash = hash
	user.ResetCodeExpiresAt = &expires
	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		respond.Error(c, err, "Error saving the reset code")
		return
	}

	if err := h.mailer.SendMail(user.Email, mailsmodels.PasswordReset(code)); err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error sending the reset mail")
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// @Summary Reset password
// @Description Set a new password with the emailed code
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.PasswordReset true "Email, code and new password"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 400 {object} map[string]interface{} "error: Invalid or expired code"
// @Router /password/reset [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var input models.PasswordReset
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		respond.Error(c, err, "Database error")
		return
	}
	if err != nil || !h.validResetCode(user, input.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	user.Password = passwordHash
	user.ResetCodeHash = ""
	user.ResetCodeExpiresAt = nil
	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		respond.Error(c, err, "Error updating the password")
		return
	}

	utils.LogSuccessWithUser(user.ID, "Password reset")
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *Handler) validResetCode(user *models.User, code string) bool {
	if user.ResetCodeHash == "" || user.ResetCodeExpiresAt == nil {
		return false
	}
	if !h.now().Before(*user.ResetCodeExpiresAt) {
		return false
	}
	return samePassword(code, user.ResetCodeHash)
}

// resetCode returns a random six digit code.
func resetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func samePassword(formPassword string, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(formPassword))
	return err == nil
}

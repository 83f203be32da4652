package handlers

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/middleware"
	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/services"
	"github.com/harentsoaR/pet24-api/internal/utils"
)

const minPasswordLength = 6

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// startSession issues a token for user and stores it in the session cookie.
func (h *Handler) startSession(c *gin.Context, user models.User) bool {
	token, err := h.tokens.GenerateJWT(user)
	if err != nil {
		h.log.Error("Could not generate token", zap.String("user_id", user.ID), zap.Error(err))
		return false
	}
	utils.SetSessionCookie(c, token, h.opts.SecureCookie)
	return true
}

func (h *Handler) Login(c *gin.Context) {
	const failed = "خطا در ورود به سیستم"

	var req loginRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		badRequest(c, "ایمیل و رمز عبور الزامی است")
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, failed)
		return
	}
	if !h.startSession(c, user) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": failed})
		return
	}

	h.log.Info("User logged in", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

// Signup creates a plain user account and logs it in.
func (h *Handler) Signup(c *gin.Context) {
	const failed = "خطا در ثبت نام"

	var req signupRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Email == "" || req.Name == "" || req.Password == "" {
		badRequest(c, "تمام فیلدها الزامی است")
		return
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		badRequest(c, "رمز عبور باید حداقل ۶ کاراکتر باشد")
		return
	}
	if !h.validator.Email(services.NormalizeEmail(req.Email)) {
		badRequest(c, "ایمیل نامعتبر است")
		return
	}

	user, err := h.Users.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		h.respondError(c, err, failed)
		return
	}
	if !h.startSession(c, user) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": failed})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user.Public()})
}

// Session returns the identity carried by the session cookie.
func (h *Handler) Session(c *gin.Context) {
	claims := middleware.CurrentSession(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": models.PublicUser{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}})
}

func (h *Handler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.opts.SecureCookie)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthDebug reports whether an account exists for ?email=.
func (h *Handler) AuthDebug(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, gin.H{
			"message": "Provide email query parameter",
			"example": "/api/auth/debug?email=user@example.com",
		})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"found": false, "message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"found":       true,
		"email":       user.Email,
		"name":        user.Name,
		"role":        user.Role,
		"hasPassword": user.Password != "",
	})
}

// ListUsers returns every account with passwords masked.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Error accessing users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

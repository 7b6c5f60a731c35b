package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodfast/foodfast-backend/internal/config"
	"github.com/foodfast/foodfast-backend/internal/httperr"
	"github.com/foodfast/foodfast-backend/internal/models"
	ucuser "github.com/foodfast/foodfast-backend/internal/usecase/user"
)

type AuthHandler struct {
	svc    *ucuser.Service
	config *config.Config
}

func NewAuthHandler(svc *ucuser.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}
	if user == nil {
		httperr.Unauthorized(c, "invalid_credentials", "email or password is wrong")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "email or password is wrong")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

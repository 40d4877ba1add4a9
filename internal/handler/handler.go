package handler

import (
	"net/http"
	"strings"

	"github.com/krishsharma1008/offsite/internal/capture"
	"github.com/krishsharma1008/offsite/internal/model"
	"github.com/krishsharma1008/offsite/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	users     *service.UserService
	uploads   *service.UploadService
	gallery   *service.GalleryService
	reconcile *service.ReconcileService
	rolls     *service.RollService
	capturer  *capture.Capturer
}

func NewHandler(
	users *service.UserService,
	uploads *service.UploadService,
	gallery *service.GalleryService,
	reconcile *service.ReconcileService,
	rolls *service.RollService,
	capturer *capture.Capturer,
) *Handler {
	return &Handler{
		users:     users,
		uploads:   uploads,
		gallery:   gallery,
		reconcile: reconcile,
		rolls:     rolls,
		capturer:  capturer,
	}
}

// Register регистрирует участника события
// @Summary Регистрация
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.RegisterRequest true "Данные регистрации"
// @Success 201 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorMessage
// @Failure 409 {object} model.ErrorMessage
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input model.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	access, refresh, err := h.users.Register(c.Request.Context(), input.UserName, input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}
	c.JSON(http.StatusCreated, model.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

// Login выполняет вход по email и паролю
// @Summary Вход
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorMessage
// @Failure 401 {object} model.ErrorMessage
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	access, refresh, err := h.users.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, model.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

// Refresh обновляет access токен
// @Summary Обновление токена
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.RefreshRequest true "Refresh токен"
// @Success 200 {object} model.RefreshResponse
// @Failure 401 {object} model.ErrorMessage
// @Router /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var input model.RefreshRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	access, err := h.users.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, model.RefreshResponse{AccessToken: access})
}

// GetProfile возвращает профиль с состоянием пленки
// @Summary Профиль
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} model.ErrorMessage
// @Router /profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID := userIDFromContext(c)
	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User not found"})
		return
	}
	account, err := h.rolls.Init(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load roll"})
		return
	}
	c.JSON(http.StatusOK, model.ProfileResponse{
		ID:         user.ID.String(),
		UserName:   user.UserName,
		Email:      user.Email,
		PhotoCount: account.Taken(),
		Remaining:  account.Remaining(),
	})
}

func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		userID, err := service.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set("user_id", userID.String())
		c.Next()
	}
}

func userIDFromContext(c *gin.Context) uuid.UUID {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil
	}
	return id
}

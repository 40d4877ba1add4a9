package handler

import (
	"errors"
	"image"
	"log"
	"net/http"

	// Регистрация декодеров кадров
	_ "image/jpeg"
	_ "image/png"

	"github.com/krishsharma1008/offsite/internal/capture"
	"github.com/krishsharma1008/offsite/internal/model"
	"github.com/krishsharma1008/offsite/internal/service"
	"github.com/krishsharma1008/offsite/internal/shared"

	"github.com/gin-gonic/gin"
)

// Shot принимает кадр с камеры, прогоняет обработку и загружает результат
// @Summary Сделать кадр
// @Tags camera
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param frame formData file true "Кадр с камеры"
// @Param filter formData string false "Идентификатор фильтра"
// @Success 201 {object} model.ShotResponse
// @Failure 400 {object} model.ErrorMessage
// @Failure 409 {object} model.ErrorMessage
// @Failure 502 {object} model.ErrorMessage
// @Router /camera/shot [post]
func (h *Handler) Shot(c *gin.Context) {
	userID := userIDFromContext(c)

	fileHeader, err := c.FormFile("frame")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Frame is required"})
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read frame"})
		return
	}
	defer src.Close()

	frame, _, err := image.Decode(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image format"})
		return
	}

	encoded, err := h.capturer.Process(frame, c.PostForm("filter"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process frame"})
		return
	}
	if encoded == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Frame has no pixels"})
		return
	}

	photo, count, err := h.uploads.Upload(c.Request.Context(), userID, encoded, nil)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRollFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Roll is full"})
		case errors.Is(err, service.ErrUploadInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "Another upload is in progress"})
		default:
			log.Printf("upload failed for %s: %v", userID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed, shot is not spent — try again"})
		}
		return
	}

	remaining := shared.MaxShots - count
	if remaining < 0 {
		remaining = 0
	}
	c.JSON(http.StatusCreated, model.ShotResponse{
		Success:   true,
		Count:     count,
		Remaining: remaining,
		Photo:     photo,
	})
}

// GetRoll возвращает состояние пленки пользователя
// @Summary Состояние пленки
// @Tags camera
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.RollResponse
// @Router /camera/roll [get]
func (h *Handler) GetRoll(c *gin.Context) {
	userID := userIDFromContext(c)
	account, err := h.rolls.Init(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load roll"})
		return
	}
	c.JSON(http.StatusOK, model.RollResponse{
		Taken:     account.Taken(),
		Remaining: account.Remaining(),
		MaxShots:  shared.MaxShots,
	})
}

// GetFilters возвращает каталог фильтров камеры
// @Summary Список фильтров
// @Tags camera
// @Produce json
// @Success 200 {array} model.FilterInfo
// @Router /camera/filters [get]
func (h *Handler) GetFilters(c *gin.Context) {
	catalog := capture.Filters()
	result := make([]model.FilterInfo, 0, len(catalog))
	for _, f := range catalog {
		result = append(result, model.FilterInfo{ID: f.ID, Name: f.Name})
	}
	c.JSON(http.StatusOK, result)
}

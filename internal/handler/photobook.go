package handler

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetPhotoBook возвращает все фотографии события
// @Summary Фотокнига
// @Tags photobook
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Сортировка: uploaded_new, uploaded_old, random"
// @Success 200 {object} map[string]interface{}
// @Router /photobook [get]
func (h *Handler) GetPhotoBook(c *gin.Context) {
	photos, sortUsed, err := h.gallery.GetAllPhotos(c.Request.Context(), c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load photo book"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos, "sort": sortUsed})
}

// GetMyPhotos возвращает фотографии текущего пользователя
// @Summary Мои фотографии
// @Tags photobook
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /photobook/my [get]
func (h *Handler) GetMyPhotos(c *gin.Context) {
	userID := userIDFromContext(c)
	photos, err := h.gallery.GetUserPhotos(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// DeletePhoto удаляет фотографию пользователя
// @Summary Удалить фотографию
// @Tags photobook
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID фотографии"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} model.ErrorMessage
// @Router /photobook/photo/{id} [delete]
func (h *Handler) DeletePhoto(c *gin.Context) {
	userID := userIDFromContext(c)
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
		return
	}

	count, err := h.gallery.DeletePhoto(c.Request.Context(), userID, photoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// Reconcile запускает сверку метаданных с хранилищем
// @Summary Сверка фотокниги
// @Tags photobook
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ReconcileResponse
// @Failure 502 {object} model.ErrorMessage
// @Router /photobook/reconcile [post]
func (h *Handler) Reconcile(c *gin.Context) {
	deleted, err := h.reconcile.Reconcile(c.Request.Context())
	if err != nil {
		// Проход брошен, следующий триггер начнет заново
		log.Printf("reconciliation aborted: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Reconciliation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

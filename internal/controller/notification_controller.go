package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/service"
)

type NotificationController struct {
	notificationService service.NotificationService
}

func NewNotificationController(ns service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: ns}
}

func (c *NotificationController) RegisterRoutes(r gin.IRouter) {
	notifications := r.Group("/notifications")
	notifications.POST("", c.SavePreferences)
	notifications.GET("/:user_id", c.GetPreferences)
}

// SavePreferences godoc
// @Summary Save notification preferences
// @Description Creates or replaces the user's preferences. Omitted toggles are stored as true.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param preferences body dto.NotificationPreferenceDTO true "Preferences"
// @Success 200 {object} dto.NotificationPreferenceResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications [post]
func (c *NotificationController) SavePreferences(ctx *gin.Context) {
	var req dto.NotificationPreferenceDTO
	if !bindJSON(ctx, &req) {
		return
	}
	pref, err := c.notificationService.SavePreferences(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to save notification preferences")
		return
	}
	ctx.JSON(http.StatusOK, pref)
}

// GetPreferences godoc
// @Summary Get notification preferences
// @Description Answers null when the user never saved preferences.
// @Tags Notifications
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} dto.NotificationPreferenceResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/{user_id} [get]
func (c *NotificationController) GetPreferences(ctx *gin.Context) {
	userID, ok := uuidParam(ctx, "user_id")
	if !ok {
		return
	}
	pref, err := c.notificationService.GetPreferences(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve notification preferences")
		return
	}
	ctx.JSON(http.StatusOK, pref)
}

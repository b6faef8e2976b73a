package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/application/notification/usecases"
	"hoteltec/internal/shared/utils"
)

type NotificationHandler struct {
	listNotifications *usecases.ListNotificationsUseCase
	markRead          *usecases.MarkNotificationReadUseCase
	markAllRead       *usecases.MarkAllReadUseCase
}

func NewNotificationHandler(
	listNotifications *usecases.ListNotificationsUseCase,
	markRead *usecases.MarkNotificationReadUseCase,
	markAllRead *usecases.MarkAllReadUseCase,
) *NotificationHandler {
	return &NotificationHandler{
		listNotifications: listNotifications,
		markRead:          markRead,
		markAllRead:       markAllRead,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.GetPagination(c)
	result, err := h.listNotifications.Execute(c.Request.Context(), usecases.ListNotificationsCommand{
		UserID:     userID,
		UnreadOnly: c.Query("unread_only") == "true",
		Page:       page.Page,
		PageSize:   page.Limit(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]NotificationResponse, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		out = append(out, toNotificationResponse(n))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"notifications": out,
		"total":         result.Total,
		"unread_count":  result.UnreadCount,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	n, err := h.markRead.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{
		NotificationID: notificationID,
		UserID:         userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notification read", toNotificationResponse(n))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.markAllRead.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notifications read", gin.H{"updated": updated})
}

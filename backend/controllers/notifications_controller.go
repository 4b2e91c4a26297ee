package controllers

import (
	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/utils"
)

type NotificationsController struct {
	Notifier *services.Notifier
}

func NewNotificationsController(notifier *services.Notifier) *NotificationsController {
	return &NotificationsController{Notifier: notifier}
}

// GetNotifications godoc
// @Summary Live notifications
// @Description Returns notifications that have not expired or been dismissed, oldest first
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.Notification}
// @Security ApiKeyAuth
// @Router /notifications [get]
func (nc *NotificationsController) GetNotifications(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, nc.Notifier.List())
}

// DismissNotification godoc
// @Summary Dismiss notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/{id} [delete]
func (nc *NotificationsController) DismissNotification(c *fiber.Ctx) error {
	if !nc.Notifier.Dismiss(c.Params("id")) {
		return utils.NotFound(c, "Notification not found")
	}
	return utils.OK(c, "Notification dismissed", nil)
}

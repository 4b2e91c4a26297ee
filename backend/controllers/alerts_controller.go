package controllers

import (
	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/utils"
)

type AlertsController struct {
	Store    *services.SyllabusStore
	Notifier *services.Notifier
}

func NewAlertsController(store *services.SyllabusStore, notifier *services.Notifier) *AlertsController {
	return &AlertsController{Store: store, Notifier: notifier}
}

// GetAlerts godoc
// @Summary Overdue alerts
// @Description Derives alerts for pending topics past their due date, most overdue first
// @Tags alerts
// @Produce json
// @Param q query string false "Search in topic or subject name"
// @Param severity query string false "high, medium, low or all"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Alert}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /alerts [get]
func (ac *AlertsController) GetAlerts(c *fiber.Ctx) error {
	severity := c.Query("severity")
	switch models.Severity(severity) {
	case "", "all", models.SeverityHigh, models.SeverityMedium, models.SeverityLow:
	default:
		return utils.BadRequest(c, "severity must be one of high, medium, low, all")
	}

	alerts, err := ac.Store.GetAlerts(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}

	filtered := services.FilterAlerts(alerts, c.Query("q"), severity)
	return utils.Success(c, fiber.StatusOK, filtered, fiber.Map{"total": len(alerts), "shown": len(filtered)})
}

// ResolveAlert godoc
// @Summary Resolve alert
// @Description Marks the topic behind the alert complete
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /alerts/{id}/resolve [post]
func (ac *AlertsController) ResolveAlert(c *fiber.Ctx) error {
	topic, err := ac.Store.ResolveAlert(c.UserContext(), c.Params("id"), requestUser(c).Name)
	if err != nil {
		return serviceError(c, err)
	}
	if topic == nil {
		return utils.Success(c, fiber.StatusOK, applied(false, nil))
	}

	ac.Notifier.Push(models.NotificationSuccess, "Alert Resolved", topic.Name+" has been marked as complete")
	return utils.Success(c, fiber.StatusOK, applied(true, topic))
}

// DismissAlert godoc
// @Summary Dismiss alert
// @Description Acknowledges an alert. Alerts are derived, so it reappears while the topic stays overdue.
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /alerts/{id}/dismiss [post]
func (ac *AlertsController) DismissAlert(c *fiber.Ctx) error {
	n := ac.Notifier.Push(models.NotificationInfo, "Alert Dismissed", "Alert has been dismissed")
	return utils.OK(c, "Alert dismissed", n)
}

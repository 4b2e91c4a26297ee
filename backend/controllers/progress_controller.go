package controllers

import (
	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/config"
	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/utils"
)

type ProgressController struct {
	Store    *services.SyllabusStore
	Notifier *services.Notifier
	Cfg      *config.Config
}

func NewProgressController(store *services.SyllabusStore, notifier *services.Notifier, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: store, Notifier: notifier, Cfg: cfg}
}

// GetDashboard godoc
// @Summary Dashboard
// @Description Returns subjects, recent activity, alerts and progress in one payload
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.Dashboard}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (pc *ProgressController) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := pc.Store.Dashboard(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, dashboard)
}

// GetProgress godoc
// @Summary Progress overview
// @Description Returns per-subject completion and the overall figure
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.ProgressOverview}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	overview, err := pc.Store.Progress(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, overview)
}

// Sync godoc
// @Summary Sync with class data
// @Description Waits the configured sync delay, then reloads the dashboard
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.Dashboard}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /sync [post]
func (pc *ProgressController) Sync(c *fiber.Ctx) error {
	ctx := c.UserContext()
	pc.Notifier.Push(models.NotificationInfo, "Syncing...", "Synchronizing with class data")

	if err := services.Sleep(ctx, pc.Cfg.SyncDelay); err != nil {
		return serviceError(c, err)
	}

	dashboard, err := pc.Store.Dashboard(ctx)
	if err != nil {
		return serviceError(c, err)
	}
	pc.Notifier.Push(models.NotificationSuccess, "Sync Complete", "Successfully synchronized with class data")
	return utils.OK(c, "Sync complete", dashboard)
}

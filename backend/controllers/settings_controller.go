package controllers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/utils"
)

type SettingsController struct {
	Settings *services.SettingsService
	Notifier *services.Notifier
}

func NewSettingsController(settings *services.SettingsService, notifier *services.Notifier) *SettingsController {
	return &SettingsController{Settings: settings, Notifier: notifier}
}

// GetSettings godoc
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.Settings}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /settings [get]
func (sc *SettingsController) GetSettings(c *fiber.Ctx) error {
	settings, err := sc.Settings.Get(c.UserContext(), requestUser(c))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Save settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body models.Settings true "Complete settings"
// @Success 200 {object} utils.SuccessResponse{data=models.Settings}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /settings [put]
func (sc *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var settings models.Settings
	if ok, err := parseAndValidate(c, &settings); !ok {
		return err
	}
	if err := sc.Settings.Save(c.UserContext(), settings); err != nil {
		return serviceError(c, err)
	}
	sc.Notifier.Push(models.NotificationSuccess, "Success", "Preferences saved!")
	return utils.OK(c, "Settings saved", settings)
}

// ExportSettings godoc
// @Summary Export settings
// @Description Downloads the settings as an indented JSON backup
// @Tags settings
// @Produce json
// @Success 200 {file} file
// @Security ApiKeyAuth
// @Router /settings/export [get]
func (sc *SettingsController) ExportSettings(c *fiber.Ctx) error {
	data, err := sc.Settings.Export(c.UserContext(), requestUser(c))
	if err != nil {
		return serviceError(c, err)
	}
	c.Attachment("syllabus-tracker-data-" + utils.FormatDate(c.Context().Time(), nil) + ".json")
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

// ImportSettings godoc
// @Summary Import settings
// @Description Restores a backup made by export. Accepts the JSON document as the body or as a multipart "file" field.
// @Tags settings
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.Settings}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /settings/import [post]
func (sc *SettingsController) ImportSettings(c *fiber.Ctx) error {
	data := c.Body()
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return utils.BadRequest(c, "Cannot read uploaded file")
		}
		defer f.Close()
		if data, err = io.ReadAll(f); err != nil {
			return utils.BadRequest(c, "Cannot read uploaded file")
		}
	}

	settings, err := sc.Settings.Import(c.UserContext(), requestUser(c), data)
	if errors.Is(err, services.ErrMalformedImport) {
		sc.Notifier.Push(models.NotificationError, "Error", services.ErrMalformedImport.Error())
		return utils.BadRequest(c, services.ErrMalformedImport.Error())
	}
	if err != nil {
		return serviceError(c, err)
	}

	sc.Notifier.Push(models.NotificationSuccess, "Success", "Data imported successfully!")
	return utils.OK(c, "Data imported successfully!", settings)
}

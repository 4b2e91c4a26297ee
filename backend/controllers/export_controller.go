package controllers

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/utils"
)

type ExportController struct {
	Store *services.SyllabusStore
}

func NewExportController(store *services.SyllabusStore) *ExportController {
	return &ExportController{Store: store}
}

// Export godoc
// @Summary Download progress report
// @Description Renders the selected subjects as CSV or a printable HTML report
// @Tags export
// @Produce text/csv
// @Produce text/html
// @Param format query string false "csv (default) or html"
// @Param subjects query string false "Comma separated subject IDs, all when empty"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /export [get]
func (ec *ExportController) Export(c *fiber.Ctx) error {
	format := c.Query("format", "csv")
	if format != "csv" && format != "html" {
		return utils.BadRequest(c, "format must be csv or html")
	}

	var ids []string
	for _, id := range strings.Split(c.Query("subjects"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	subjects, err := ec.Store.GetSubjects(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	subjects = services.SelectSubjects(subjects, ids)
	today := ec.Store.Today()

	var buf bytes.Buffer
	contentType := "text/csv; charset=utf-8"
	if format == "csv" {
		err = services.WriteCSV(&buf, subjects)
	} else {
		err = services.WriteHTMLReport(&buf, subjects, today)
		contentType = fiber.MIMETextHTMLCharsetUTF8
	}
	if err != nil {
		return serviceError(c, err)
	}

	c.Attachment(services.ExportFilename(format, today))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(buf.Bytes())
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type ExportHandler struct {
	exporter services.ExportService
}

func NewExportHandler(exporter services.ExportService) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
	}
}

// HandleExportCSV handles POST /export-csv. The caller supplies a previously
// returned, already-ranked results list.
func (h *ExportHandler) HandleExportCSV(c *fiber.Ctx) error {
	var req models.ExportRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request payload",
		})
	}

	if len(req.Results) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No results to download",
		})
	}

	csvContent, err := h.exporter.WriteCSV(req.Results)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "failed to build CSV",
		})
	}

	return c.JSON(models.ExportResponse{
		Success:  true,
		CSV:      csvContent,
		Filename: h.exporter.SuggestedFilename(time.Now()),
	})
}

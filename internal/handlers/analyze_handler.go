package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/middleware"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /analyze. It accepts a multipart batch of
// resumes plus an optional job description and returns ranked successes and
// per-file failures.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "failed to parse multipart form",
		})
	}

	jobDescription := c.FormValue("job_description")

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No files uploaded",
		})
	}

	batch := h.analyzer.AnalyzeBatch(c.UserContext(), middleware.UserID(c), jobDescription, files)

	// Keep both lists non-nil so clients always see arrays
	if batch.Results == nil {
		batch.Results = []models.AnalysisResult{}
	}
	if batch.Errors == nil {
		batch.Errors = []models.AnalysisFailure{}
	}

	return c.JSON(models.AnalyzeResponse{
		Success: true,
		Results: batch.Results,
		Errors:  batch.Errors,
	})
}

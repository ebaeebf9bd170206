package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/middleware"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

const historyLimit = 10

type HistoryHandler struct {
	repo repositories.AnalysisRepository
}

func NewHistoryHandler(repo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		repo: repo,
	}
}

// HandleGetHistory handles GET /history: the user's most recent analyses,
// newest first, bounded to the last 10.
func (h *HistoryHandler) HandleGetHistory(c *fiber.Ctx) error {
	resumes, err := h.repo.FindRecentByUser(middleware.UserID(c), historyLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Database error",
		})
	}

	items := make([]models.HistoryItem, 0, len(resumes))
	for _, resume := range resumes {
		items = append(items, models.HistoryItem{
			ID:               resume.ID.String(),
			OriginalFileName: resume.OriginalFileName,
			UploadedAt:       resume.UploadedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"resumes": items,
	})
}

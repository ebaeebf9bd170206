package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(resume *models.Resume) error
	FindRecentByUser(userID string, limit int) ([]models.Resume, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create implements AnalysisRepository.
func (r *analysisRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create analysis record: %w", err)
	}

	return nil
}

// FindRecentByUser implements AnalysisRepository.
func (r *analysisRepository) FindRecentByUser(userID string, limit int) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&resumes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analysis records: %w", err)
	}

	return resumes, nil
}

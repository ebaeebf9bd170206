package models

import (
	"time"

	"github.com/google/uuid"
)

// JobDescriptionNone is stored when a batch was analyzed without a job description.
const JobDescriptionNone = "N/A"

type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           string    `gorm:"type:text;not null;index" json:"user_id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	AnalysisResult   string    `gorm:"type:text" json:"analysis_result"`
	Score            float64   `gorm:"type:decimal(5,2)" json:"score"`
	JobDescription   string    `gorm:"type:text" json:"job_description"`
	UploadedAt       time.Time `gorm:"type:timestamp;default:now()" json:"uploaded_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

package services

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const summaryLength = 200

type ExportService interface {
	WriteCSV(results []models.AnalysisResult) (string, error)
	SuggestedFilename(now time.Time) string
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

// WriteCSV implements ExportService. Rows follow the order supplied by the
// caller, which is expected to be the already-ranked batch result; rank is
// the 1-based position.
func (e *exportService) WriteCSV(results []models.AnalysisResult) (string, error) {
	var out strings.Builder
	writer := csv.NewWriter(&out)

	if err := writer.Write([]string{"Rank", "Resume", "Score", "AI Feedback Summary"}); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, result := range results {
		row := []string{
			strconv.Itoa(i + 1),
			result.Filename,
			strconv.FormatFloat(result.Score, 'f', -1, 64),
			summarize(result.Analysis),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return out.String(), nil
}

// SuggestedFilename implements ExportService.
func (e *exportService) SuggestedFilename(now time.Time) string {
	return fmt.Sprintf("resume_analysis_%s.csv", now.Format("20060102_150405"))
}

// summarize takes the first 200 characters of the analysis, collapses
// embedded newlines to spaces, and appends an ellipsis marker.
func summarize(analysis string) string {
	if runes := []rune(analysis); len(runes) > summaryLength {
		analysis = string(runes[:summaryLength])
	}
	analysis = strings.ReplaceAll(analysis, "\n", " ")
	return analysis + "..."
}

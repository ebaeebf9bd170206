package services_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func TestExportService_WriteCSV(t *testing.T) {
	exporter := services.NewExportService()

	t.Run("header and ranked rows", func(t *testing.T) {
		results := []models.AnalysisResult{
			{Filename: "a.pdf", Score: 90, Analysis: "Strong candidate"},
			{Filename: "b.docx", Score: 75.5, Analysis: "Decent candidate"},
		}

		out, err := exporter.WriteCSV(results)
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, []string{"Rank", "Resume", "Score", "AI Feedback Summary"}, records[0])
		assert.Equal(t, []string{"1", "a.pdf", "90", "Strong candidate..."}, records[1])
		assert.Equal(t, []string{"2", "b.docx", "75.5", "Decent candidate..."}, records[2])
	})

	t.Run("long analysis is truncated to 200 chars plus ellipsis", func(t *testing.T) {
		analysis := strings.Repeat("X", 500)
		out, err := exporter.WriteCSV([]models.AnalysisResult{
			{Filename: "a.pdf", Score: 90, Analysis: analysis},
		})
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)

		summary := records[1][3]
		assert.Len(t, summary, 203)
		assert.NotContains(t, summary, "\n")
		assert.True(t, strings.HasSuffix(summary, "..."))
	})

	t.Run("truncation falls on rune boundaries", func(t *testing.T) {
		analysis := strings.Repeat("X", 199) + "é" + strings.Repeat("Y", 300)
		out, err := exporter.WriteCSV([]models.AnalysisResult{
			{Filename: "a.pdf", Score: 90, Analysis: analysis},
		})
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err)

		summary := records[1][3]
		assert.True(t, utf8.ValidString(summary))
		assert.Equal(t, 203, utf8.RuneCountInString(summary))
		assert.True(t, strings.HasSuffix(summary, "é..."))
	})

	t.Run("newlines collapsed to spaces", func(t *testing.T) {
		out, err := exporter.WriteCSV([]models.AnalysisResult{
			{Filename: "a.pdf", Score: 60, Analysis: "line one\nline two\nline three"},
		})
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "line one line two line three...", records[1][3])
	})

	t.Run("idempotent output", func(t *testing.T) {
		results := []models.AnalysisResult{
			{Filename: "a.pdf", Score: 90, Analysis: "Feedback, with \"quotes\"\nand lines"},
			{Filename: "b.pdf", Score: 40, Analysis: "More feedback"},
		}

		first, err := exporter.WriteCSV(results)
		require.NoError(t, err)
		second, err := exporter.WriteCSV(results)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestExportService_SuggestedFilename(t *testing.T) {
	exporter := services.NewExportService()

	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	assert.Equal(t, "resume_analysis_20260314_150926.csv", exporter.SuggestedFilename(now))
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-analyzer/internal/services"
)

func TestPromptBuilder_Build(t *testing.T) {
	builder := services.NewPromptBuilder()

	t.Run("empty job description selects general template", func(t *testing.T) {
		prompt := builder.Build("resume body", "")

		assert.Contains(t, prompt, "**Overall Score** (out of 100)")
		assert.Contains(t, prompt, "**ATS Compatibility**")
		assert.Contains(t, prompt, "resume body")
		assert.NotContains(t, prompt, "Match Score")
	})

	t.Run("whitespace job description selects general template", func(t *testing.T) {
		prompt := builder.Build("resume body", "   \n ")

		assert.Contains(t, prompt, "**Overall Score** (out of 100)")
	})

	t.Run("job description selects job-matched template", func(t *testing.T) {
		prompt := builder.Build("resume body", "Senior Engineer with Go experience")

		assert.Contains(t, prompt, "**Match Score** (0-100)")
		assert.Contains(t, prompt, "**Recommendation**: Hire/Interview/Reject")
		assert.Contains(t, prompt, "Senior Engineer with Go experience")
		assert.Contains(t, prompt, "resume body")
		assert.NotContains(t, prompt, "ATS Compatibility")
	})
}

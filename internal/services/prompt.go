package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build renders the analysis prompt for one resume. A non-empty job
// description selects the job-matched template, otherwise the general one.
// The section labels and their order are part of the contract with the
// model: the score heuristic relies on the score appearing as N/100.
func (pb *PromptBuilder) Build(resumeText, jobDescription string) string {
	if strings.TrimSpace(jobDescription) != "" {
		return pb.buildJobMatchPrompt(resumeText, jobDescription)
	}
	return pb.buildGeneralPrompt(resumeText)
}

func (pb *PromptBuilder) buildJobMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Analyze this resume against the job description and provide:
1. **Match Score** (0-100): How well the candidate matches the job
2. **Key Matching Skills**: Skills that align with the job
3. **Missing Skills**: Required skills not present
4. **Strengths**: What makes this candidate suitable
5. **Concerns**: Potential gaps or issues
6. **Recommendation**: Hire/Interview/Reject with justification

Job Description:
%s

Resume:
%s

Format your response in clear sections.`, jobDescription, resumeText)
}

func (pb *PromptBuilder) buildGeneralPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze this resume and provide:
1. **Overall Score** (out of 100)
2. **Key Skills Identified** (bullet list)
3. **Experience Summary**
4. **Education Summary**
5. **Strengths**
6. **Areas for Improvement**
7. **ATS Compatibility** (keywords, formatting)

Resume Text:
%s

Format your response in clear sections.`, resumeText)
}

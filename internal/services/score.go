package services

import (
	"regexp"
	"strconv"
)

// DefaultScore is used when the analysis text contains no recognizable score.
const DefaultScore = 50.0

var scorePattern = regexp.MustCompile(`(?i)(\d{1,3})(?:/100|%|\s*out of 100)`)

// ExtractScore pulls a numeric score out of free-form analysis text. It is a
// best-effort heuristic over unstructured model output: the first 1-3 digit
// number followed by "/100", "%" or "out of 100" wins, clamped to [0, 100].
// Without a match the score defaults to 50.
func ExtractScore(analysis string) float64 {
	match := scorePattern.FindStringSubmatch(analysis)
	if match == nil {
		return DefaultScore
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return DefaultScore
	}

	if value > 100 {
		value = 100
	}

	return value
}

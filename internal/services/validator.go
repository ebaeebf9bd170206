package services

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DocumentFormat is decided once at validation time and carried through the
// pipeline, so later stages never re-inspect the filename.
type DocumentFormat int

const (
	FormatPDF DocumentFormat = iota
	FormatWord
)

type DocumentValidator interface {
	Validate(filename string) (DocumentFormat, error)
}

type documentValidator struct{}

func NewDocumentValidator() DocumentValidator {
	return &documentValidator{}
}

// Validate implements DocumentValidator.
func (v *documentValidator) Validate(filename string) (DocumentFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatWord, nil
	default:
		return 0, fmt.Errorf("unsupported or missing file type")
	}
}

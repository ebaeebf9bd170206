package services

import (
	"encoding/xml"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type TextExtractor interface {
	Extract(format DocumentFormat, filePath string) string
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract implements TextExtractor. It never fails: malformed, scanned or
// otherwise unreadable documents simply produce an empty string, which the
// caller treats as a terminal per-document condition.
func (e *textExtractor) Extract(format DocumentFormat, filePath string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️  Recovered from extractor panic for %s: %v\n", filePath, r)
			text = ""
		}
	}()

	switch format {
	case FormatPDF:
		return e.extractPDF(filePath)
	case FormatWord:
		return e.extractWord(filePath)
	default:
		return ""
	}
}

func (e *textExtractor) extractPDF(filePath string) string {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		log.Printf("⚠️  Failed to open PDF %s: %v\n", filePath, err)
		return ""
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest of the document
			continue
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String()
}

func (e *textExtractor) extractWord(filePath string) string {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		log.Printf("⚠️  Failed to open word document %s: %v\n", filePath, err)
		return ""
	}
	defer doc.Close()

	paragraphs := parseDocxParagraphs(doc.Editable().GetContent())
	return strings.Join(paragraphs, "\n")
}

// parseDocxParagraphs walks the document XML and collects the text runs of
// each paragraph in document order.
func parseDocxParagraphs(content string) []string {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				inParagraph = false
				paragraphs = append(paragraphs, current.String())
			case "t":
				inText = false
			}
		}
	}

	return paragraphs
}

package cv

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	models "cvpage/internal/domain/models/cv"
)

// MarkdownExporter renders the CV header as markdown, for READMEs and
// plain-text profiles.
type MarkdownExporter struct {
	header    *HeaderBuilder
	converter *md.Converter
}

// NewMarkdownExporter creates an exporter over the given header builder.
func NewMarkdownExporter(header *HeaderBuilder) *MarkdownExporter {
	return &MarkdownExporter{
		header:    header,
		converter: md.NewConverter("", true, nil),
	}
}

// Export converts the header fragment to markdown.
func (e *MarkdownExporter) Export(meta *models.Metadata) (string, error) {
	fragment, err := e.header.Fragment(meta)
	if err != nil {
		return "", err
	}

	markdown, err := e.converter.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("failed to convert header to markdown: %w", err)
	}

	return strings.TrimSpace(markdown) + "\n", nil
}

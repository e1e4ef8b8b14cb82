package cv

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"

	"cvpage/internal/config"
	"cvpage/internal/domain"
	"cvpage/internal/service/cv/sanitizer"
	"cvpage/internal/utils"
)

// DefaultShell is the page the CV is rendered into when no template is
// configured. The header is mounted into <header>, the body into <main>.
const DefaultShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title></title>
<link rel="stylesheet" href="https://unpkg.com/@phosphor-icons/web@2.1.1/src/regular/style.css">
<link rel="stylesheet" href="style.css">
</head>
<body>
<header></header>
<main></main>
</body>
</html>
`

// PageRenderer turns a CV document (front matter + markdown) into a full
// HTML page.
//
// Thread-safe for concurrent use.
type PageRenderer struct {
	shell     []byte
	header    *HeaderBuilder
	markdown  goldmark.Markdown
	sanitizer *sanitizer.HTMLSanitizer
	logger    *slog.Logger
}

// NewPageRenderer creates a page renderer. An empty shell selects DefaultShell.
func NewPageRenderer(shell []byte, header *HeaderBuilder, logger *slog.Logger) *PageRenderer {
	if len(bytes.TrimSpace(shell)) == 0 {
		shell = []byte(DefaultShell)
	}

	return &PageRenderer{
		shell:  shell,
		header: header,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		sanitizer: sanitizer.NewBodySanitizer(),
		logger:    logger,
	}
}

// Render produces the HTML page for a CV document.
// Returns domain.ErrValidation if the front matter is missing or invalid.
func (r *PageRenderer) Render(ctx context.Context, doc []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(doc) > config.MaxDocumentSize {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", domain.ErrValidation, config.MaxDocumentSize)
	}

	meta, body, err := utils.ParseCVDocument(doc)
	if err != nil {
		return nil, err
	}
	if err := ValidateMetadata(meta); err != nil {
		return nil, err
	}

	// Stage 1: markdown body to sanitized HTML
	var rendered bytes.Buffer
	if err := r.markdown.Convert([]byte(body), &rendered); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	bodyHTML := r.sanitizer.Sanitize(rendered.String())

	// Stage 2: fill the page shell
	root, err := html.Parse(bytes.NewReader(r.shell))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page shell: %w", err)
	}
	page := goquery.NewDocumentFromNode(root)

	page.Find("title").First().SetText(meta.Title)

	if content := page.Find("main").First(); content.Length() > 0 {
		content.SetHtml(bodyHTML)
	} else {
		page.Find("body").First().AppendHtml(bodyHTML)
	}

	mount := FindMount(root)
	if mount == nil {
		r.logger.Debug("page shell has no header, skipping CV header")
	}
	r.header.Mount(mount, meta)

	var out bytes.Buffer
	if err := html.Render(&out, root); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return out.Bytes(), nil
}

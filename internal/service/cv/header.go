package cv

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cvpage/internal/domain"
	models "cvpage/internal/domain/models/cv"
)

const (
	// DownloadHref is the PDF rendition of the CV. It is produced elsewhere
	// and served as a static file.
	DownloadHref  = "cv.pdf"
	downloadLabel = "Download PDF"
)

// HeaderBuilder assembles the CV header: title block, contact block and
// download block.
//
// Thread-safe for concurrent use; every call builds a fresh node tree.
type HeaderBuilder struct {
	logger *slog.Logger
}

// NewHeaderBuilder creates a header builder that reports skipped contact
// fields to logger.
func NewHeaderBuilder(logger *slog.Logger) *HeaderBuilder {
	return &HeaderBuilder{logger: logger}
}

// Build returns the header sections in mount order.
func (b *HeaderBuilder) Build(meta *models.Metadata) []*html.Node {
	items, skipped := ContactItems(meta)
	b.logSkipped(skipped)

	return []*html.Node{
		titleSection(meta),
		contactSection(items),
		downloadSection(),
	}
}

// Mount appends the header sections to mount.
// A nil mount means the page has no header region and nothing is done.
func (b *HeaderBuilder) Mount(mount *html.Node, meta *models.Metadata) {
	if mount == nil {
		return
	}
	for _, section := range b.Build(meta) {
		mount.AppendChild(section)
	}
}

// Fragment renders the header sections as an HTML fragment.
func (b *HeaderBuilder) Fragment(meta *models.Metadata) (string, error) {
	var buf bytes.Buffer
	for _, section := range b.Build(meta) {
		if err := html.Render(&buf, section); err != nil {
			return "", fmt.Errorf("render header: %w", err)
		}
	}
	return buf.String(), nil
}

// View returns the JSON representation of the header.
func (b *HeaderBuilder) View(meta *models.Metadata) *models.HeaderView {
	items, skipped := ContactItems(meta)
	b.logSkipped(skipped)

	view := &models.HeaderView{
		Title:    meta.Title,
		Headline: meta.Headline,
		Items:    make([]models.ContactItem, 0, len(items)),
		Skipped:  make([]models.SkippedField, 0, len(skipped)),
		Download: DownloadHref,
	}
	view.Items = append(view.Items, items...)
	for _, result := range skipped {
		view.Skipped = append(view.Skipped, models.SkippedField{
			Field:  result.Field,
			Reason: result.Err.Error(),
		})
	}
	return view
}

func (b *HeaderBuilder) logSkipped(skipped []models.FieldResult) {
	for _, result := range skipped {
		if errors.Is(result.Err, domain.ErrMalformedField) {
			b.logger.Warn("contact field skipped",
				"field", result.Field,
				"error", result.Err,
			)
			continue
		}
		b.logger.Debug("contact field skipped",
			"field", result.Field,
			"reason", result.Err,
		)
	}
}

// FindMount returns the first <header> element of doc, or nil if the page
// has none.
func FindMount(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	header := goquery.NewDocumentFromNode(doc).Find("header").First()
	if header.Length() == 0 {
		return nil
	}
	return header.Get(0)
}

func titleSection(meta *models.Metadata) *html.Node {
	div := element(atom.Div)

	h1 := element(atom.H1)
	h1.AppendChild(text(meta.Title))
	div.AppendChild(h1)

	// The headline paragraph is always present, empty when unset
	headline := element(atom.P, attr("class", "headline"))
	headline.AppendChild(text(meta.Headline))
	div.AppendChild(headline)

	return div
}

func contactSection(items []models.ContactItem) *html.Node {
	div := element(atom.Div, attr("class", "contact-details"))
	for _, item := range items {
		div.AppendChild(contactItem(item))
	}
	return div
}

// contactItem renders <div><i class="ph ICON"></i><a|span>LABEL</a|span></div>.
func contactItem(item models.ContactItem) *html.Node {
	div := element(atom.Div)
	div.AppendChild(element(atom.I, attr("class", "ph "+item.Icon)))

	var content *html.Node
	if item.Href == "" {
		content = element(atom.Span)
	} else {
		attrs := []html.Attribute{attr("href", item.Href)}
		if item.NewTab {
			attrs = append(attrs, attr("target", "_blank"))
		}
		content = element(atom.A, attrs...)
	}
	content.AppendChild(text(item.Label))
	div.AppendChild(content)

	return div
}

func downloadSection() *html.Node {
	div := element(atom.Div, attr("class", "download-section"))

	link := element(atom.A,
		attr("href", DownloadHref),
		attr("class", "download-link"),
		attr("target", "_blank"),
	)
	link.AppendChild(text(downloadLabel))
	div.AppendChild(link)

	return div
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

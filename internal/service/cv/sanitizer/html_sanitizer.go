package sanitizer

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer removes dangerous HTML elements and attributes.
//
// Thread-safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewBodySanitizer creates the sanitizer for rendered CV body markdown.
// Uses the UGC policy: common formatting survives, scripts, event handlers
// and javascript: URLs do not.
func NewBodySanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	// Keep heading anchors generated by the markdown renderer
	policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &HTMLSanitizer{policy: policy}
}

// NewHeaderSanitizer creates a sanitizer that admits exactly the markup the
// header builder emits. Used when the header is rendered from metadata
// supplied by an API caller.
func NewHeaderSanitizer() *HTMLSanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("div", "h1", "p", "i", "span", "a")
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	policy.AllowURLSchemes("http", "https", "mailto", "tel")
	policy.AllowRelativeURLs(true)

	return &HTMLSanitizer{policy: policy}
}

// Sanitize removes dangerous HTML while preserving safe content.
func (s *HTMLSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}

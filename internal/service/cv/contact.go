package cv

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"cvpage/internal/domain"
	models "cvpage/internal/domain/models/cv"
)

var digitRun = regexp.MustCompile(`\d+`)

// contactField binds a front matter key to its icon and formatter.
type contactField struct {
	key    string
	icon   string
	format func(value string) ([]models.ContactItem, error)
}

// contactFields lists the contact fields in display order.
var contactFields = []contactField{
	{key: models.FieldWebsite, icon: "ph-globe", format: formatWebsite},
	{key: models.FieldEmail, icon: "ph-envelope", format: formatEmail},
	{key: models.FieldPhone, icon: "ph-phone", format: formatPhone},
	{key: models.FieldGitHub, icon: "ph-github-logo", format: handleLink("https://github.com/")},
	{key: models.FieldLinkedIn, icon: "ph-linkedin-logo", format: formatLinkedIn},
	{key: models.FieldMastodon, icon: "ph-mastodon-logo", format: handleLink("https://mastodon.social/@")},
	{key: models.FieldX, icon: "ph-bird", format: handleLink("https://x.com/")},
	{key: models.FieldStackOverflow, icon: "ph-stack-overflow-logo", format: formatStackOverflow},
}

// ContactFieldKeys returns the contact field keys in display order.
func ContactFieldKeys() []string {
	keys := make([]string, len(contactFields))
	for i, f := range contactFields {
		keys[i] = f.key
	}
	return keys
}

// FormatField formats a single raw contact value.
// Unknown keys produce a skipped result wrapping domain.ErrValidation.
func FormatField(key, value string) models.FieldResult {
	for _, f := range contactFields {
		if f.key == key {
			return f.apply(value)
		}
	}
	return models.FieldResult{
		Field: key,
		Err:   fmt.Errorf("%w: unknown contact field %q", domain.ErrValidation, key),
	}
}

// ContactItems formats every present contact field of meta in display order.
// It returns the rendered items and the results of fields that were skipped.
func ContactItems(meta *models.Metadata) ([]models.ContactItem, []models.FieldResult) {
	var items []models.ContactItem
	var skipped []models.FieldResult

	for _, f := range contactFields {
		value := meta.Field(f.key)
		if value == "" {
			continue
		}

		result := f.apply(value)
		if result.Skipped() {
			skipped = append(skipped, result)
			continue
		}
		items = append(items, result.Items...)
	}

	return items, skipped
}

func (f contactField) apply(value string) models.FieldResult {
	items, err := f.format(value)
	if err != nil {
		var malformed *domain.MalformedFieldError
		if errors.As(err, &malformed) {
			malformed.Field = f.key
		}
		return models.FieldResult{Field: f.key, Err: err}
	}

	for i := range items {
		items[i].Field = f.key
		items[i].Icon = f.icon
	}
	return models.FieldResult{Field: f.key, Items: items}
}

func formatWebsite(value string) ([]models.ContactItem, error) {
	u, err := parseAbsoluteURL(value)
	if err != nil {
		return nil, err
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil, &domain.MalformedFieldError{Value: value, Err: errors.New("missing host")}
	}
	// IPv6 literals keep their brackets
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	return []models.ContactItem{{
		Label:  host,
		Href:   value,
		NewTab: true,
	}}, nil
}

func formatEmail(value string) ([]models.ContactItem, error) {
	return []models.ContactItem{{Label: value, Href: "mailto:" + value}}, nil
}

// formatPhone emits one item per non-blank line, in input order.
func formatPhone(value string) ([]models.ContactItem, error) {
	var items []models.ContactItem
	for _, line := range strings.Split(value, "\n") {
		phone := strings.TrimFunc(line, isSpace)
		if phone == "" {
			continue
		}
		items = append(items, models.ContactItem{
			Label: phone,
			Href:  "tel:" + stripSpace(phone),
		})
	}
	return items, nil
}

// isSpace reports Unicode white space, including no-break and thin spaces,
// plus the byte order mark that pasted numbers often carry.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, s)
}

// handleLink builds a formatter for "@handle" style fields. The label keeps
// the value as written; the link drops at most one leading "@".
func handleLink(prefix string) func(string) ([]models.ContactItem, error) {
	return func(value string) ([]models.ContactItem, error) {
		return []models.ContactItem{{
			Label: value,
			Href:  prefix + strings.TrimPrefix(value, "@"),
		}}, nil
	}
}

func formatLinkedIn(value string) ([]models.ContactItem, error) {
	u, err := parseAbsoluteURL(value)
	if err != nil {
		return nil, err
	}

	var id string
	for _, segment := range strings.Split(u.EscapedPath(), "/") {
		if segment != "" {
			id = segment
		}
	}
	if id == "" {
		return nil, &domain.MalformedFieldError{Value: value, Err: errors.New("missing profile id")}
	}

	return []models.ContactItem{{Label: id, Href: value, NewTab: true}}, nil
}

func formatStackOverflow(value string) ([]models.ContactItem, error) {
	id := digitRun.FindString(value)
	if id == "" {
		return nil, domain.ErrNoIdentifier
	}

	return []models.ContactItem{{Label: "SO/" + id, Href: value, NewTab: true}}, nil
}

// parseAbsoluteURL accepts only URLs with a scheme, so bare words such as
// "not a url" are rejected.
func parseAbsoluteURL(value string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return nil, &domain.MalformedFieldError{Value: value, Err: err}
	}
	if u.Scheme == "" {
		return nil, &domain.MalformedFieldError{Value: value, Err: errors.New("missing scheme")}
	}
	return u, nil
}

package cv

import (
	"errors"
	"reflect"
	"testing"

	"cvpage/internal/domain"
	models "cvpage/internal/domain/models/cv"
)

func TestFormatField(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantItems []models.ContactItem
		wantErr   error
	}{
		{
			name:  "website uses hostname as label",
			field: models.FieldWebsite,
			value: "https://jane.example.com/about?ref=cv",
			wantItems: []models.ContactItem{
				{Field: "website", Icon: "ph-globe", Label: "jane.example.com", Href: "https://jane.example.com/about?ref=cv", NewTab: true},
			},
		},
		{
			name:  "website hostname drops port and case",
			field: models.FieldWebsite,
			value: "https://Jane.Example.COM:8443",
			wantItems: []models.ContactItem{
				{Field: "website", Icon: "ph-globe", Label: "jane.example.com", Href: "https://Jane.Example.COM:8443", NewTab: true},
			},
		},
		{
			name:  "website IPv6 host keeps brackets",
			field: models.FieldWebsite,
			value: "http://[::1]:8080/",
			wantItems: []models.ContactItem{
				{Field: "website", Icon: "ph-globe", Label: "[::1]", Href: "http://[::1]:8080/", NewTab: true},
			},
		},
		{
			name:  "website IPv6 host is lowercased",
			field: models.FieldWebsite,
			value: "https://[2001:DB8::1]/",
			wantItems: []models.ContactItem{
				{Field: "website", Icon: "ph-globe", Label: "[2001:db8::1]", Href: "https://[2001:DB8::1]/", NewTab: true},
			},
		},
		{
			name:    "website without scheme is malformed",
			field:   models.FieldWebsite,
			value:   "not a url",
			wantErr: domain.ErrMalformedField,
		},
		{
			name:    "website without host is malformed",
			field:   models.FieldWebsite,
			value:   "https://",
			wantErr: domain.ErrMalformedField,
		},
		{
			name:  "email",
			field: models.FieldEmail,
			value: "jane@example.com",
			wantItems: []models.ContactItem{
				{Field: "email", Icon: "ph-envelope", Label: "jane@example.com", Href: "mailto:jane@example.com"},
			},
		},
		{
			name:  "phone splits lines and strips whitespace from link",
			field: models.FieldPhone,
			value: "123\n\n456  789",
			wantItems: []models.ContactItem{
				{Field: "phone", Icon: "ph-phone", Label: "123", Href: "tel:123"},
				{Field: "phone", Icon: "ph-phone", Label: "456  789", Href: "tel:456789"},
			},
		},
		{
			name:  "phone trims lines",
			field: models.FieldPhone,
			value: "  +1 555 0100 \r\n\t\n",
			wantItems: []models.ContactItem{
				{Field: "phone", Icon: "ph-phone", Label: "+1 555 0100", Href: "tel:+15550100"},
			},
		},
		{
			name:  "phone link drops no-break spaces",
			field: models.FieldPhone,
			value: "+1\u00a0555\u00a00100",
			wantItems: []models.ContactItem{
				{Field: "phone", Icon: "ph-phone", Label: "+1\u00a0555\u00a00100", Href: "tel:+15550100"},
			},
		},
		{
			name:  "phone link drops vertical tab",
			field: models.FieldPhone,
			value: "+1\v555",
			wantItems: []models.ContactItem{
				{Field: "phone", Icon: "ph-phone", Label: "+1\v555", Href: "tel:+1555"},
			},
		},
		{
			name:  "phone link drops thin and ideographic spaces",
			field: models.FieldPhone,
			value: "+1\u2009555\u30000100",
			wantItems: []models.ContactItem{
				{Field: "phone", Icon: "ph-phone", Label: "+1\u2009555\u30000100", Href: "tel:+15550100"},
			},
		},
		{
			name:  "phone label trims no-break spaces and byte order marks at the edges",
			field: models.FieldPhone,
			value: "\u00a0+1 555\u00a0\n\ufeff+44 20",
			wantItems: []models.ContactItem{
				{Field: "phone", Icon: "ph-phone", Label: "+1 555", Href: "tel:+1555"},
				{Field: "phone", Icon: "ph-phone", Label: "+44 20", Href: "tel:+4420"},
			},
		},
		{
			name:      "phone with only blank lines yields nothing",
			field:     models.FieldPhone,
			value:     "\n  \n",
			wantItems: nil,
		},
		{
			name:  "github strips leading at from link only",
			field: models.FieldGitHub,
			value: "@alice",
			wantItems: []models.ContactItem{
				{Field: "github", Icon: "ph-github-logo", Label: "@alice", Href: "https://github.com/alice"},
			},
		},
		{
			name:  "github without at",
			field: models.FieldGitHub,
			value: "alice",
			wantItems: []models.ContactItem{
				{Field: "github", Icon: "ph-github-logo", Label: "alice", Href: "https://github.com/alice"},
			},
		},
		{
			name:  "github strips a single at",
			field: models.FieldGitHub,
			value: "@@alice",
			wantItems: []models.ContactItem{
				{Field: "github", Icon: "ph-github-logo", Label: "@@alice", Href: "https://github.com/@alice"},
			},
		},
		{
			name:  "linkedin uses last path segment",
			field: models.FieldLinkedIn,
			value: "https://www.linkedin.com/in/jane-doe/",
			wantItems: []models.ContactItem{
				{Field: "linked_in", Icon: "ph-linkedin-logo", Label: "jane-doe", Href: "https://www.linkedin.com/in/jane-doe/", NewTab: true},
			},
		},
		{
			name:    "linkedin handle is malformed",
			field:   models.FieldLinkedIn,
			value:   "jane-doe",
			wantErr: domain.ErrMalformedField,
		},
		{
			name:    "linkedin without path is malformed",
			field:   models.FieldLinkedIn,
			value:   "https://www.linkedin.com/",
			wantErr: domain.ErrMalformedField,
		},
		{
			name:  "mastodon",
			field: models.FieldMastodon,
			value: "@jane",
			wantItems: []models.ContactItem{
				{Field: "mastodon", Icon: "ph-mastodon-logo", Label: "@jane", Href: "https://mastodon.social/@jane"},
			},
		},
		{
			name:  "mastodon without at",
			field: models.FieldMastodon,
			value: "jane",
			wantItems: []models.ContactItem{
				{Field: "mastodon", Icon: "ph-mastodon-logo", Label: "jane", Href: "https://mastodon.social/@jane"},
			},
		},
		{
			name:  "x",
			field: models.FieldX,
			value: "@jane",
			wantItems: []models.ContactItem{
				{Field: "x", Icon: "ph-bird", Label: "@jane", Href: "https://x.com/jane"},
			},
		},
		{
			name:  "stackoverflow uses first digit run",
			field: models.FieldStackOverflow,
			value: "https://stackoverflow.com/users/42/bob7",
			wantItems: []models.ContactItem{
				{Field: "stackoverflow", Icon: "ph-stack-overflow-logo", Label: "SO/42", Href: "https://stackoverflow.com/users/42/bob7", NewTab: true},
			},
		},
		{
			name:  "stackoverflow keeps a long digit run intact",
			field: models.FieldStackOverflow,
			value: "12345678901234567890123",
			wantItems: []models.ContactItem{
				{Field: "stackoverflow", Icon: "ph-stack-overflow-logo", Label: "SO/12345678901234567890123", Href: "12345678901234567890123", NewTab: true},
			},
		},
		{
			name:    "stackoverflow without digits",
			field:   models.FieldStackOverflow,
			value:   "https://stackoverflow.com/users/bob",
			wantErr: domain.ErrNoIdentifier,
		},
		{
			name:    "unknown field",
			field:   "myspace",
			value:   "tom",
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatField(tt.field, tt.value)

			if tt.wantErr != nil {
				if !result.Skipped() {
					t.Fatalf("FormatField() expected skip, got items %+v", result.Items)
				}
				if !errors.Is(result.Err, tt.wantErr) {
					t.Errorf("FormatField() error = %v, want %v", result.Err, tt.wantErr)
				}
				if result.Items != nil {
					t.Errorf("FormatField() skipped result carries items %+v", result.Items)
				}
				return
			}

			if result.Skipped() {
				t.Fatalf("FormatField() unexpected error: %v", result.Err)
			}
			if !reflect.DeepEqual(result.Items, tt.wantItems) {
				t.Errorf("FormatField() items = %+v, want %+v", result.Items, tt.wantItems)
			}
		})
	}
}

func TestFormatFieldNoIdentifierIsNotMalformed(t *testing.T) {
	result := FormatField(models.FieldStackOverflow, "bob")
	if errors.Is(result.Err, domain.ErrMalformedField) {
		t.Errorf("stackoverflow without digits should not be reported as malformed: %v", result.Err)
	}
}

func TestFormatFieldMalformedNamesField(t *testing.T) {
	result := FormatField(models.FieldWebsite, "not a url")

	var malformed *domain.MalformedFieldError
	if !errors.As(result.Err, &malformed) {
		t.Fatalf("expected MalformedFieldError, got %T", result.Err)
	}
	if malformed.Field != models.FieldWebsite {
		t.Errorf("Field = %q, want %q", malformed.Field, models.FieldWebsite)
	}
	if malformed.Value != "not a url" {
		t.Errorf("Value = %q, want %q", malformed.Value, "not a url")
	}
}

func TestContactItemsOrder(t *testing.T) {
	// Struct field order differs from display order on purpose
	meta := &models.Metadata{
		Title:         "Jane Doe",
		StackOverflow: "https://stackoverflow.com/users/42/jane",
		X:             "@jane",
		Mastodon:      "@jane",
		LinkedIn:      "https://www.linkedin.com/in/jane",
		GitHub:        "@jane",
		Phone:         "111\n222",
		Email:         "jane@example.com",
		Website:       "https://jane.dev",
	}

	items, skipped := ContactItems(meta)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped fields: %+v", skipped)
	}

	var got []string
	for _, item := range items {
		got = append(got, item.Field)
	}
	want := []string{"website", "email", "phone", "phone", "github", "linked_in", "mastodon", "x", "stackoverflow"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("field order = %v, want %v", got, want)
	}
	if items[2].Label != "111" || items[3].Label != "222" {
		t.Errorf("phone order = %q, %q, want 111, 222", items[2].Label, items[3].Label)
	}
}

func TestContactItemsTitleOnly(t *testing.T) {
	items, skipped := ContactItems(&models.Metadata{Title: "Jane Doe"})
	if len(items) != 0 || len(skipped) != 0 {
		t.Errorf("ContactItems() = %+v, %+v, want none", items, skipped)
	}
}

func TestContactItemsMalformedFieldIsIsolated(t *testing.T) {
	meta := &models.Metadata{
		Title:   "Jane Doe",
		Website: "not a url",
		Email:   "jane@example.com",
		GitHub:  "jane",
	}

	items, skipped := ContactItems(meta)

	if len(skipped) != 1 || skipped[0].Field != models.FieldWebsite {
		t.Fatalf("skipped = %+v, want only website", skipped)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Field != models.FieldEmail || items[1].Field != models.FieldGitHub {
		t.Errorf("items = %+v, want email then github", items)
	}
}

func TestContactFieldKeys(t *testing.T) {
	want := []string{"website", "email", "phone", "github", "linked_in", "mastodon", "x", "stackoverflow"}
	if got := ContactFieldKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("ContactFieldKeys() = %v, want %v", got, want)
	}
}

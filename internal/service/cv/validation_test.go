package cv

import (
	"errors"
	"strings"
	"testing"

	"cvpage/internal/config"
	"cvpage/internal/domain"
	models "cvpage/internal/domain/models/cv"
)

func TestValidateMetadata(t *testing.T) {
	tests := []struct {
		name    string
		meta    *models.Metadata
		wantErr bool
	}{
		{
			name: "title only",
			meta: &models.Metadata{Title: "Jane Doe"},
		},
		{
			name: "malformed contact values are not validation errors",
			meta: &models.Metadata{Title: "Jane Doe", Website: "not a url", StackOverflow: "bob"},
		},
		{
			name:    "nil",
			meta:    nil,
			wantErr: true,
		},
		{
			name:    "missing title",
			meta:    &models.Metadata{Headline: "Engineer"},
			wantErr: true,
		},
		{
			name:    "blank title",
			meta:    &models.Metadata{Title: " \t"},
			wantErr: true,
		},
		{
			name:    "title too long",
			meta:    &models.Metadata{Title: strings.Repeat("a", config.MaxTitleLength+1)},
			wantErr: true,
		},
		{
			name:    "contact value too long",
			meta:    &models.Metadata{Title: "Jane Doe", Email: strings.Repeat("a", config.MaxFieldLength+1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMetadata(tt.meta)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateMetadata() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("ValidateMetadata() error = %v, want ErrValidation", err)
			}
		})
	}
}

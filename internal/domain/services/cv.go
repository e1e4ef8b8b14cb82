package services

import (
	"context"

	models "cvpage/internal/domain/models/cv"
)

// RenderHeaderRequest carries caller-supplied metadata for a header preview.
// The JSON body is the metadata object itself.
type RenderHeaderRequest struct {
	models.Metadata
}

// CVService defines operations on the configured CV document
type CVService interface {
	// Page renders the full CV page
	Page(ctx context.Context) ([]byte, error)

	// Header returns the CV header as structured data
	Header(ctx context.Context) (*models.HeaderView, error)

	// HeaderMarkdown returns the CV header converted to markdown
	HeaderMarkdown(ctx context.Context) (string, error)

	// RenderHeader renders a sanitized header fragment from caller-supplied metadata.
	// Returns domain.ErrValidation if the metadata is invalid.
	RenderHeader(ctx context.Context, req *RenderHeaderRequest) (string, error)
}

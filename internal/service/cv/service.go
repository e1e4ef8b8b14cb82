package cv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cvpage/internal/domain"
	models "cvpage/internal/domain/models/cv"
	"cvpage/internal/domain/services"
	"cvpage/internal/service/cv/sanitizer"
	"cvpage/internal/utils"
)

// cvService implements the CVService interface over a CV file on disk.
// The file is re-read on every call so edits show up without a restart.
type cvService struct {
	cvPath    string
	readFile  func(name string) ([]byte, error)
	header    *HeaderBuilder
	pages     *PageRenderer
	exporter  *MarkdownExporter
	sanitizer *sanitizer.HTMLSanitizer
	logger    *slog.Logger
}

// NewCVService creates a CV service rendering the document at cvPath
// into the given page shell.
func NewCVService(cvPath string, shell []byte, logger *slog.Logger) services.CVService {
	header := NewHeaderBuilder(logger)

	return &cvService{
		cvPath:    cvPath,
		readFile:  os.ReadFile,
		header:    header,
		pages:     NewPageRenderer(shell, header, logger),
		exporter:  NewMarkdownExporter(header),
		sanitizer: sanitizer.NewHeaderSanitizer(),
		logger:    logger,
	}
}

// Page renders the full CV page
func (s *cvService) Page(ctx context.Context) ([]byte, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	page, err := s.pages.Render(ctx, doc)
	if err != nil {
		return nil, s.documentError(err)
	}

	return page, nil
}

// Header returns the CV header as structured data
func (s *cvService) Header(ctx context.Context) (*models.HeaderView, error) {
	meta, err := s.metadata(ctx)
	if err != nil {
		return nil, err
	}

	return s.header.View(meta), nil
}

// HeaderMarkdown returns the CV header converted to markdown
func (s *cvService) HeaderMarkdown(ctx context.Context) (string, error) {
	meta, err := s.metadata(ctx)
	if err != nil {
		return "", err
	}

	return s.exporter.Export(meta)
}

// RenderHeader renders a sanitized header fragment from caller-supplied metadata
func (s *cvService) RenderHeader(ctx context.Context, req *services.RenderHeaderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req == nil {
		return "", fmt.Errorf("%w: request body is required", domain.ErrValidation)
	}

	meta := req.Metadata
	if err := ValidateMetadata(&meta); err != nil {
		return "", err
	}

	fragment, err := s.header.Fragment(&meta)
	if err != nil {
		return "", err
	}

	// Metadata is untrusted here, unlike the operator's own CV file
	return s.sanitizer.Sanitize(fragment), nil
}

func (s *cvService) metadata(ctx context.Context) (*models.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	meta, _, err := utils.ParseCVDocument(doc)
	if err != nil {
		return nil, s.documentError(err)
	}
	if err := ValidateMetadata(meta); err != nil {
		return nil, s.documentError(err)
	}

	return meta, nil
}

func (s *cvService) load() ([]byte, error) {
	doc, err := s.readFile(s.cvPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("cv document %s not found", s.cvPath)}
	}
	if err != nil {
		return nil, fmt.Errorf("read cv document: %w", err)
	}
	return doc, nil
}

// documentError turns validation failures of the configured CV file into
// server errors: the caller did not supply the bad input.
func (s *cvService) documentError(err error) error {
	if !errors.Is(err, domain.ErrValidation) {
		return err
	}

	s.logger.Error("cv document is invalid",
		"path", s.cvPath,
		"error", err,
	)
	return fmt.Errorf("cv document %s is invalid: %v", s.cvPath, err)
}

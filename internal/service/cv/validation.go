package cv

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cvpage/internal/config"
	"cvpage/internal/domain"
	models "cvpage/internal/domain/models/cv"
)

// ValidateMetadata checks the metadata a header is rendered from.
// Contact values are only length-checked: a malformed contact value drops
// that field from the header instead of failing the render.
func ValidateMetadata(meta *models.Metadata) error {
	if meta == nil {
		return fmt.Errorf("%w: metadata is required", domain.ErrValidation)
	}

	err := validation.ValidateStruct(meta,
		validation.Field(&meta.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
			validation.By(notBlank),
		),
		validation.Field(&meta.Headline, validation.Length(0, config.MaxHeadlineLength)),
		validation.Field(&meta.Website, validation.Length(0, config.MaxFieldLength)),
		validation.Field(&meta.Email, validation.Length(0, config.MaxFieldLength)),
		validation.Field(&meta.Phone, validation.Length(0, config.MaxFieldLength)),
		validation.Field(&meta.GitHub, validation.Length(0, config.MaxFieldLength)),
		validation.Field(&meta.LinkedIn, validation.Length(0, config.MaxFieldLength)),
		validation.Field(&meta.Mastodon, validation.Length(0, config.MaxFieldLength)),
		validation.Field(&meta.X, validation.Length(0, config.MaxFieldLength)),
		validation.Field(&meta.StackOverflow, validation.Length(0, config.MaxFieldLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}

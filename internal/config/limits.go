package config

const (
	// MaxTitleLength is the maximum length for the CV owner's name.
	MaxTitleLength = 255

	// MaxHeadlineLength is the maximum length for the headline shown
	// under the name.
	MaxHeadlineLength = 500

	// MaxFieldLength bounds every contact field. Matches the longest URL
	// most browsers will follow.
	MaxFieldLength = 2048

	// MaxDocumentSize is the largest CV document (front matter + body)
	// accepted for rendering.
	MaxDocumentSize = 1 << 20

	// MaxRequestBodySize limits render API payloads.
	MaxRequestBodySize = 64 << 10
)

package cv

// Front matter keys recognized in a CV document.
const (
	FieldTitle         = "title"
	FieldHeadline      = "headline"
	FieldWebsite       = "website"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldGitHub        = "github"
	FieldLinkedIn      = "linked_in"
	FieldMastodon      = "mastodon"
	FieldX             = "x"
	FieldStackOverflow = "stackoverflow"
)

// Metadata is the CV owner's front matter.
// An empty string means the field is absent.
type Metadata struct {
	Title         string `yaml:"title" json:"title"`
	Headline      string `yaml:"headline" json:"headline,omitempty"`
	Website       string `yaml:"website" json:"website,omitempty"`
	Email         string `yaml:"email" json:"email,omitempty"`
	Phone         string `yaml:"phone" json:"phone,omitempty"`
	GitHub        string `yaml:"github" json:"github,omitempty"`
	LinkedIn      string `yaml:"linked_in" json:"linked_in,omitempty"`
	Mastodon      string `yaml:"mastodon" json:"mastodon,omitempty"`
	X             string `yaml:"x" json:"x,omitempty"`
	StackOverflow string `yaml:"stackoverflow" json:"stackoverflow,omitempty"`
}

// Field returns the raw value stored under a front matter key,
// or "" for unknown keys.
func (m *Metadata) Field(key string) string {
	if ptr := m.fieldPtr(key); ptr != nil {
		return *ptr
	}
	return ""
}

// SetField stores value under a front matter key.
// It reports false for keys Metadata does not recognize.
func (m *Metadata) SetField(key, value string) bool {
	ptr := m.fieldPtr(key)
	if ptr == nil {
		return false
	}
	*ptr = value
	return true
}

func (m *Metadata) fieldPtr(key string) *string {
	switch key {
	case FieldTitle:
		return &m.Title
	case FieldHeadline:
		return &m.Headline
	case FieldWebsite:
		return &m.Website
	case FieldEmail:
		return &m.Email
	case FieldPhone:
		return &m.Phone
	case FieldGitHub:
		return &m.GitHub
	case FieldLinkedIn:
		return &m.LinkedIn
	case FieldMastodon:
		return &m.Mastodon
	case FieldX:
		return &m.X
	case FieldStackOverflow:
		return &m.StackOverflow
	default:
		return nil
	}
}

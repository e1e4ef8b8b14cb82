package utils

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"cvpage/internal/domain"
	models "cvpage/internal/domain/models/cv"
)

// ParseFrontmatter splits a CV document into its YAML frontmatter and markdown body.
// The frontmatter is returned as the top-level mapping node, or nil when it is empty.
// Expected format:
// ---
// title: Jane Doe
// headline: Staff Engineer
// phone: |
//
//	+1 555 0100
//	+44 20 7946 0000
//
// ---
// # Markdown content here
func ParseFrontmatter(content []byte) (*yaml.Node, string, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	// Check for frontmatter delimiters
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, "", fmt.Errorf("%w: missing frontmatter: document must start with '---'", domain.ErrValidation)
	}

	// Find the closing delimiter, skipping the opening "---" line
	var closingDelim int
	lines := bytes.Split(content, []byte("\n"))
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			closingDelim = i
			break
		}
	}

	if closingDelim == 0 {
		return nil, "", fmt.Errorf("%w: missing closing frontmatter delimiter '---'", domain.ErrValidation)
	}

	yamlContent := bytes.Join(lines[1:closingDelim], []byte("\n"))

	// Decoded as a node tree so scalars keep their source text
	var doc yaml.Node
	if err := yaml.Unmarshal(yamlContent, &doc); err != nil {
		return nil, "", fmt.Errorf("%w: failed to parse YAML frontmatter: %v", domain.ErrValidation, err)
	}

	body := string(bytes.Join(lines[closingDelim+1:], []byte("\n")))

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, body, nil
		}
		root = resolve(root.Content[0])
	}

	switch {
	case root.Kind == 0 || isNull(root):
		return nil, body, nil
	case root.Kind != yaml.MappingNode:
		return nil, "", fmt.Errorf("%w: frontmatter must be a mapping of fields", domain.ErrValidation)
	}

	return root, body, nil
}

// ParseCVDocument parses a CV document into header metadata and markdown body.
func ParseCVDocument(content []byte) (*models.Metadata, string, error) {
	root, body, err := ParseFrontmatter(content)
	if err != nil {
		return nil, "", err
	}

	meta, err := MetadataFromFrontmatter(root)
	if err != nil {
		return nil, "", err
	}

	return meta, body, nil
}

// MetadataFromFrontmatter converts a frontmatter mapping node into CV metadata.
// Unknown keys are ignored and null values are treated as absent.
// Scalars keep their text as written, so an unquoted phone number such as
// 0123456789 is not reinterpreted as a number.
// A list is accepted for phone and joined one number per line.
func MetadataFromFrontmatter(root *yaml.Node) (*models.Metadata, error) {
	meta := &models.Metadata{}
	if root == nil {
		return meta, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: frontmatter must be a mapping of fields", domain.ErrValidation)
	}

	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := resolve(root.Content[i]).Value
		if !isKnownField(key) {
			continue
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: frontmatter field '%s' is defined more than once", domain.ErrValidation, key)
		}
		seen[key] = true

		value, err := scalarString(key, resolve(root.Content[i+1]))
		if err != nil {
			return nil, err
		}
		meta.SetField(key, value)
	}

	return meta, nil
}

func isKnownField(key string) bool {
	var probe models.Metadata
	return probe.SetField(key, "")
}

func scalarString(key string, node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) {
			return "", nil
		}
		return node.Value, nil
	case yaml.SequenceNode:
		if key != models.FieldPhone {
			break
		}
		parts := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("%w: frontmatter field '%s' must be a list of strings", domain.ErrValidation, key)
			}
			s, err := scalarString(key, item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, "\n"), nil
	}
	return "", fmt.Errorf("%w: frontmatter field '%s' must be a string", domain.ErrValidation, key)
}

// resolve follows alias nodes to the node they name.
func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

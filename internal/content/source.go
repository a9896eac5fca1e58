package content

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_source.go -package=mocks github.com/tmanas06/uportfolio-sub000/internal/content Source

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Source loads the site content from some backing store.
type Source interface {
	// Load reads and validates the full content set.
	Load(ctx context.Context) (*Content, error)
}

// YAMLSource loads content from a YAML file on disk.
type YAMLSource struct {
	path string
}

// NewYAMLSource creates a Source reading the YAML file at path.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

// Path returns the file the source reads from.
func (s *YAMLSource) Path() string {
	return s.path
}

// Load reads and parses the YAML file.
func (s *YAMLSource) Load(ctx context.Context) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", s.path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load content file %s: %w", s.path, err)
	}
	return c, nil
}

// EmbeddedSource serves the sample content compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource creates a Source for the built-in sample content.
func NewEmbeddedSource() EmbeddedSource {
	return EmbeddedSource{}
}

// Load parses the embedded YAML.
func (EmbeddedSource) Load(ctx context.Context) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(defaultYAML)
}

// Parse decodes YAML content and validates it.
// Unknown keys are rejected, and so is an empty document.
func Parse(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidContent)
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes content as YAML in the layout Parse accepts.
func Marshal(c *Content) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal content: %w", err)
	}
	return data, nil
}

package pillar

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/wizardwayz/portal/pkg/slug"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the static definition of every pillar. It is built once at
// startup and treated as read-only afterwards.
type Catalog struct {
	M []string `yaml:"m"`
	E []string `yaml:"e"`

	// Outbound maps a pillar name to an external destination. Visiting such a
	// pillar sends the visitor there instead of rendering a placeholder.
	Outbound map[string]string `yaml:"outbound"`
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads and validates a YAML catalog file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Join(ErrCatalogRead, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, errors.Join(ErrCatalogRead, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// WithOutbound returns a copy of the catalog whose outbound link for name
// points at url. An empty url leaves the catalog unchanged.
func (c Catalog) WithOutbound(name, url string) Catalog {
	if url == "" {
		return c
	}
	out := maps.Clone(c.Outbound)
	if out == nil {
		out = make(map[string]string, 1)
	}
	out[name] = url
	c.Outbound = out
	return c
}

// Validate checks the catalog invariants: both categories are non-empty, every
// name is unique across categories and maps to a distinct URL-safe slug, and
// at most one outbound link exists, keyed by a known pillar.
func (c Catalog) Validate() error {
	if len(c.M) == 0 {
		return fmt.Errorf("%w: category %s is empty", ErrInvalidCatalog, CategoryM)
	}
	if len(c.E) == 0 {
		return fmt.Errorf("%w: category %s is empty", ErrInvalidCatalog, CategoryE)
	}

	names := make(map[string]Category, len(c.M)+len(c.E))
	slugs := make(map[string]string, len(c.M)+len(c.E))
	for _, cat := range Categories {
		for _, name := range c.list(cat) {
			if name == "" {
				return fmt.Errorf("%w: empty name in category %s", ErrInvalidCatalog, cat)
			}
			if prev, ok := names[name]; ok {
				return fmt.Errorf("%w: %q listed in %s and %s", ErrInvalidCatalog, name, prev, cat)
			}
			names[name] = cat

			s := Slugify(name)
			if s != slug.Make(name) {
				return fmt.Errorf("%w: %q does not produce a URL-safe slug", ErrInvalidCatalog, name)
			}
			if other, ok := slugs[s]; ok {
				return fmt.Errorf("%w: %q and %q share slug %q", ErrInvalidCatalog, other, name, s)
			}
			slugs[s] = name
		}
	}

	if len(c.Outbound) > 1 {
		return fmt.Errorf("%w: at most one outbound pillar is supported, got %d", ErrInvalidCatalog, len(c.Outbound))
	}
	for name, url := range c.Outbound {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("%w: outbound link for unknown pillar %q", ErrInvalidCatalog, name)
		}
		if url == "" {
			return fmt.Errorf("%w: outbound link for %q is empty", ErrInvalidCatalog, name)
		}
	}

	return nil
}

func (c Catalog) list(cat Category) []string {
	switch cat {
	case CategoryM:
		return c.M
	case CategoryE:
		return c.E
	default:
		return nil
	}
}

// clone detaches the catalog from slices and maps the caller may still hold.
func (c Catalog) clone() Catalog {
	return Catalog{
		M:        slices.Clone(c.M),
		E:        slices.Clone(c.E),
		Outbound: maps.Clone(c.Outbound),
	}
}

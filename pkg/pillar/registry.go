package pillar

import (
	"fmt"
	"slices"
)

// Registry answers lookups over a validated catalog. It never changes after
// construction and is safe for concurrent use.
type Registry struct {
	catalog Catalog
}

// NewRegistry validates the catalog and returns a registry over a private copy
// of it.
func NewRegistry(c Catalog) (*Registry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Registry{catalog: c.clone()}, nil
}

// MustDefaultRegistry returns a registry over the embedded catalog.
// It panics if the embedded catalog is invalid.
func MustDefaultRegistry() *Registry {
	c, err := DefaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("embedded pillar catalog: %v", err))
	}
	reg, err := NewRegistry(c)
	if err != nil {
		panic(fmt.Sprintf("embedded pillar catalog: %v", err))
	}
	return reg
}

// AllPillars returns the pillar names of a category in catalog order.
// The result is a copy; an unknown category yields nil.
func (r *Registry) AllPillars(category Category) []string {
	return slices.Clone(r.catalog.list(category))
}

// All returns every pillar, M first, each category in catalog order.
func (r *Registry) All() []Pillar {
	out := make([]Pillar, 0, len(r.catalog.M)+len(r.catalog.E))
	for _, cat := range Categories {
		for _, name := range r.catalog.list(cat) {
			out = append(out, Pillar{Name: name, Category: cat})
		}
	}
	return out
}

// CategoryOf reports the category of a pillar name. The bool is false for
// names outside the catalog.
func (r *Registry) CategoryOf(name string) (Category, bool) {
	switch {
	case slices.Contains(r.catalog.M, name):
		return CategoryM, true
	case slices.Contains(r.catalog.E, name):
		return CategoryE, true
	default:
		return "", false
	}
}

// ResolveSlug returns the first pillar whose slug equals s exactly.
// It returns ErrSlugNotFound when nothing matches.
func (r *Registry) ResolveSlug(s string) (Pillar, error) {
	for _, p := range r.All() {
		if p.Slug() == s {
			return p, nil
		}
	}
	return Pillar{}, fmt.Errorf("%w: %q", ErrSlugNotFound, s)
}

// Outbound returns the external destination bound to a pillar name, if any.
func (r *Registry) Outbound(name string) (string, bool) {
	url, ok := r.catalog.Outbound[name]
	return url, ok
}

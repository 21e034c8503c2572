package pillar

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is one of the two disjoint partitions of the catalog.
type Category string

const (
	// CategoryM holds the pillars bound to the M letters of the tagline.
	CategoryM Category = "M"
	// CategoryE holds the pillars bound to the E letters of the tagline.
	CategoryE Category = "E"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryM, CategoryE}

// String returns the category letter.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryM || c == CategoryE
}

// Pillar is an immutable named concept belonging to exactly one category.
type Pillar struct {
	Name     string
	Category Category
}

// Slug returns the URL identifier of the pillar.
func (p Pillar) Slug() string {
	return Slugify(p.Name)
}

// Slugify lowercases name. It accepts any string, including ones that match
// no pillar, and never fails.
func Slugify(name string) string {
	// cases.Caser keeps state between calls and is not safe for concurrent use.
	return cases.Lower(language.Und).String(name)
}

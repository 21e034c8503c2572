// Package pillar holds the pillar catalog, lookups over it, and the random
// selector that binds pillars to the homepage tagline.
//
// A pillar is a named concept in one of two categories, M or E. The catalog is
// loaded once at startup (from the embedded catalog.yaml unless an operator
// supplies a file) and never mutated afterwards, so a *Registry can be shared
// freely between goroutines.
//
// # Slugs
//
// A slug is the lowercase form of a pillar name. Slugify is total and accepts
// any input; ResolveSlug maps a slug back to its pillar with an exact match and
// returns ErrSlugNotFound otherwise. Catalog validation guarantees that no two
// pillars share a slug, so the round trip name -> slug -> name always holds.
//
// # Selection
//
// Selector draws a uniform random sample without replacement from a category by
// shuffling a copy of the list (Fisher-Yates) and taking a prefix. Asking for
// more items than the category holds returns the whole shuffled category
// rather than failing.
//
//	reg := pillar.MustDefaultRegistry()
//	sel := pillar.NewSelector(nil)
//	a := sel.Assign(reg, pillar.TaglineSlots)
//	// a.M and a.E each hold 4 distinct names
package pillar

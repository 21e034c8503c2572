package pillar

import "errors"

var (
	// ErrSlugNotFound is returned when a slug matches no pillar in the registry.
	ErrSlugNotFound = errors.New("pillar not found for slug")

	// ErrInvalidCatalog wraps every catalog validation failure.
	ErrInvalidCatalog = errors.New("invalid pillar catalog")

	// ErrCatalogRead is returned when a catalog file cannot be read or decoded.
	ErrCatalogRead = errors.New("failed to read pillar catalog")
)

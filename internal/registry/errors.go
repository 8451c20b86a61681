package registry

import "errors"

// Registry errors.
var (
	// ErrDuplicateDomain is returned when registering a domain name
	// that is already present without the replace flag.
	ErrDuplicateDomain = errors.New("domain already registered")

	// ErrDomainNotFound is returned when looking up an unknown domain.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrEmptyDomainName is returned when a handler has no name.
	ErrEmptyDomainName = errors.New("domain name cannot be empty")

	// ErrInvalidDomainName is returned when a handler name is not
	// lowercase/underscore.
	ErrInvalidDomainName = errors.New("domain name must be lowercase with underscores")

	// ErrNoKeywords is returned when a handler defines no keywords.
	ErrNoKeywords = errors.New("handler must define at least one keyword")
)

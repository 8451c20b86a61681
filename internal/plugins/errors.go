package plugins

import "errors"

var (
	// ErrSpecUnparseable indicates the generated manifest is not valid YAML.
	ErrSpecUnparseable = errors.New("handler spec is not valid YAML")

	// ErrMissingDomainName indicates the manifest omitted domain_name.
	ErrMissingDomainName = errors.New("handler spec missing domain_name")

	// ErrInvalidDomainName indicates a name outside the lowercase_snake form.
	ErrInvalidDomainName = errors.New("handler spec domain_name must be lowercase_snake")

	// ErrTooFewKeywords indicates fewer keywords than the required minimum.
	ErrTooFewKeywords = errors.New("handler spec needs at least 3 keywords")

	// ErrNoRules indicates the manifest has no extraction rules, so the
	// resulting handler could never produce a requirement.
	ErrNoRules = errors.New("handler spec has no extraction rules")

	// ErrGenerationFailed wraps LLM transport or completion failures.
	ErrGenerationFailed = errors.New("handler generation failed")
)

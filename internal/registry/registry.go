// Package registry owns the domain handler mapping and computes the
// best-match domain for a document. It is thread-safe: detection takes
// a read lock, the rare registration path takes the write lock.
package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"reqsmith/internal/domain"
	"reqsmith/internal/logging"
)

// NoDomain is the sentinel returned when the registry is empty or no
// handler matches at all. Callers treat it as "requires new handler".
const NoDomain = ""

var domainNamePattern = regexp.MustCompile(`^[a-z][a-z_]*$`)

// Detection is the result of scoring a document against the registry.
type Detection struct {
	// Domain is the best handler's name, or NoDomain.
	Domain string `json:"domain"`

	// Confidence is matched/total keywords for the best handler, in [0,1].
	Confidence float64 `json:"confidence"`

	// RunnerUp is the second-best handler, kept for diagnostics.
	RunnerUp           string  `json:"runner_up,omitempty"`
	RunnerUpConfidence float64 `json:"runner_up_confidence,omitempty"`
}

// entry pairs a handler with its registration order for tie-breaking.
type entry struct {
	handler domain.Handler
	order   int
}

// Registry holds all domain handlers and selects the best match.
// Constructed explicitly and passed around; there is no global instance.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	nextOrd int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// NewWithBuiltins creates a registry pre-populated with the built-in
// handlers. Registration order follows domain.Builtins().
func NewWithBuiltins() *Registry {
	r := New()
	for _, h := range domain.Builtins() {
		if err := r.Register(h); err != nil {
			// Builtins are statically defined; a failure here is a
			// programming error.
			panic(fmt.Sprintf("builtin handler %q: %v", h.Name(), err))
		}
	}
	return r
}

// validate checks the handler contract before admission.
func validate(h domain.Handler) error {
	name := h.Name()
	if name == "" {
		return ErrEmptyDomainName
	}
	if !domainNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidDomainName, name)
	}
	if len(h.Keywords()) == 0 {
		return fmt.Errorf("%w: %s", ErrNoKeywords, name)
	}
	return nil
}

// Register adds a handler. Returns ErrDuplicateDomain if the name is
// already present.
func (r *Registry) Register(h domain.Handler) error {
	if err := validate(h); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[h.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDomain, h.Name())
	}

	r.entries[h.Name()] = &entry{handler: h, order: r.nextOrd}
	r.nextOrd++

	logging.Registry("Registered domain handler: %s (keywords=%d, priority=%d)",
		h.Name(), len(h.Keywords()), h.PriorityScore())
	return nil
}

// Replace atomically swaps the handler for an existing name, or
// registers it if absent. The registration order of a replaced entry is
// preserved so tie-breaking stays stable.
func (r *Registry) Replace(h domain.Handler) error {
	if err := validate(h); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.entries[h.Name()]; exists {
		r.entries[h.Name()] = &entry{handler: h, order: prev.order}
		logging.Registry("Replaced domain handler: %s", h.Name())
		return nil
	}

	r.entries[h.Name()] = &entry{handler: h, order: r.nextOrd}
	r.nextOrd++
	logging.Registry("Registered domain handler: %s (via replace)", h.Name())
	return nil
}

// Get returns the handler for a domain name.
func (r *Registry) Get(name string) (domain.Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDomainNotFound, name)
	}
	return e.handler, nil
}

// Has reports whether a domain name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Domains returns all registered domain names in registration order.
func (r *Registry) Domains() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type named struct {
		name  string
		order int
	}
	all := make([]named, 0, len(r.entries))
	for name, e := range r.entries {
		all = append(all, named{name, e.order})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].order < all[j].order })

	names := make([]string, len(all))
	for i, n := range all {
		names[i] = n.name
	}
	return names
}

// Detect scores every handler against the document and returns the
// best match plus the runner-up.
//
// Confidence is the fraction of a handler's keywords present in the
// lowercased text. Ties break by priority score (higher wins), then by
// registration order (earliest wins). Scores are recomputed on every
// call, so a freshly registered handler is immediately visible.
func (r *Registry) Detect(text string) Detection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(text)

	type scored struct {
		name       string
		confidence float64
		priority   int
		order      int
	}

	var results []scored
	for name, e := range r.entries {
		conf := scoreHandler(e.handler, lower)
		results = append(results, scored{
			name:       name,
			confidence: conf,
			priority:   e.handler.PriorityScore(),
			order:      e.order,
		})
	}

	if len(results) == 0 {
		return Detection{Domain: NoDomain, Confidence: 0.0}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].confidence != results[j].confidence {
			return results[i].confidence > results[j].confidence
		}
		if results[i].priority != results[j].priority {
			return results[i].priority > results[j].priority
		}
		return results[i].order < results[j].order
	})

	best := results[0]
	if best.confidence == 0.0 {
		// Nothing matched at all: report the sentinel rather than an
		// arbitrary zero-score handler.
		return Detection{Domain: NoDomain, Confidence: 0.0}
	}

	det := Detection{Domain: best.name, Confidence: best.confidence}
	if len(results) > 1 {
		det.RunnerUp = results[1].name
		det.RunnerUpConfidence = results[1].confidence
	}

	logging.RegistryDebug("Detect: best=%s conf=%.3f runner_up=%s", det.Domain, det.Confidence, det.RunnerUp)
	return det
}

// Confidence scores a single registered handler against the document,
// independent of how the rest of the registry ranks. Returns 0 for an
// unknown domain.
func (r *Registry) Confidence(name, text string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return 0.0
	}
	return scoreHandler(e.handler, strings.ToLower(text))
}

// scoreHandler computes keyword-overlap confidence for one handler,
// swallowing panics from a misbehaving Keywords implementation.
func scoreHandler(h domain.Handler, lower string) (conf float64) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.RegistryError("handler %s panicked during scoring: %v", h.Name(), rec)
			conf = 0.0
		}
	}()

	keywords := h.Keywords()
	if len(keywords) == 0 || lower == "" {
		return 0.0
	}

	matched := 0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

// ExtractRequirements runs the named handler's extraction with panic
// isolation: a faulty handler contributes zero requirements and never
// aborts the caller.
func (r *Registry) ExtractRequirements(name, text string) []domain.Requirement {
	h, err := r.Get(name)
	if err != nil {
		logging.RegistryWarn("ExtractRequirements: %v", err)
		return []domain.Requirement{}
	}
	return safeExtract(h, text)
}

func safeExtract(h domain.Handler, text string) (reqs []domain.Requirement) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.RegistryError("handler %s panicked during extraction: %v", h.Name(), rec)
			reqs = []domain.Requirement{}
		}
	}()

	reqs = h.ExtractRequirements(text)
	if reqs == nil {
		reqs = []domain.Requirement{}
	}
	return reqs
}

// Stakeholders runs the named handler's stakeholder lookup with the
// same isolation as ExtractRequirements.
func (r *Registry) Stakeholders(name, text string) []string {
	h, err := r.Get(name)
	if err != nil {
		return domain.DefaultStakeholders()
	}

	var out []string
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				logging.RegistryError("handler %s panicked during stakeholder lookup: %v", h.Name(), rec)
				out = nil
			}
		}()
		out = h.Stakeholders(text)
	}()

	if len(out) == 0 {
		return domain.DefaultStakeholders()
	}
	return out
}

// Summaries describes up to n handlers (name, priority, leading
// keywords) for the generation prompt.
func (r *Registry) Summaries(n int) []string {
	names := r.Domains()
	if n > 0 && len(names) > n {
		names = names[:n]
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]string, 0, len(names))
	for _, name := range names {
		e, ok := r.entries[name]
		if !ok {
			continue
		}
		kws := e.handler.Keywords()
		if len(kws) > 6 {
			kws = kws[:6]
		}
		summaries = append(summaries,
			fmt.Sprintf("%s (priority %d): %s", name, e.handler.PriorityScore(), strings.Join(kws, ", ")))
	}
	return summaries
}

package rule

import "fmt"

// FactoryConfig is the fixed configuration bundle handed to every bitext
// rule factory: the language pair the rules will check.
type FactoryConfig struct {
	sourceLang string
	targetLang string
}

// NewFactoryConfig creates a FactoryConfig for a language pair.
func NewFactoryConfig(sourceLang, targetLang string) FactoryConfig {
	return FactoryConfig{sourceLang: sourceLang, targetLang: targetLang}
}

// SourceLang returns the source language code.
func (c FactoryConfig) SourceLang() string { return c.sourceLang }

// TargetLang returns the target language code.
func (c FactoryConfig) TargetLang() string { return c.targetLang }

// Factory constructs a bitext rule from a typed configuration bundle.
// Registering factories explicitly replaces probing constructor signatures
// at runtime: an id without a factory is caught when the rule set is built,
// not by a reflection failure deep inside loading.
type Factory func(cfg FactoryConfig) (BitextRule, error)

// FactoryRegistry maps bitext rule ids to their factories, preserving
// registration order.
type FactoryRegistry struct {
	order     []string
	factories map[string]Factory
}

// NewFactoryRegistry creates an empty FactoryRegistry.
func NewFactoryRegistry() *FactoryRegistry {
	return &FactoryRegistry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given id. Duplicate ids are rejected.
func (r *FactoryRegistry) Register(id string, f Factory) error {
	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("bitext rule factory %q already registered", id)
	}
	r.order = append(r.order, id)
	r.factories[id] = f
	return nil
}

// IDs returns every registered factory id in registration order.
func (r *FactoryRegistry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Build constructs the bitext rules for the given ids, in the given order.
// An id without a registered factory aborts the whole build with
// ErrUnknownRule — a missing factory signals a configuration defect, so no
// partial rule set is returned. A failing factory likewise aborts the build.
func (r *FactoryRegistry) Build(ids []string, cfg FactoryConfig) ([]BitextRule, error) {
	rules := make([]BitextRule, 0, len(ids))
	for _, id := range ids {
		f, ok := r.factories[id]
		if !ok {
			return nil, fmt.Errorf("%w: no factory for bitext rule %q", ErrUnknownRule, id)
		}
		rl, err := f(cfg)
		if err != nil {
			return nil, fmt.Errorf("build bitext rule %q: %w", id, err)
		}
		rules = append(rules, rl)
	}
	return rules, nil
}

package rule

import "fmt"

// Registry holds the registered monolingual rules in registration order
// together with the set of currently active rule ids. A rule starts active
// unless it reports DefaultOff. The registry is owned by a single caller
// for the duration of a check or profile run; it is not safe for concurrent
// use.
type Registry struct {
	order  []string
	rules  map[string]Rule
	active map[string]struct{}
}

// NewRegistry creates a Registry with the given rules registered.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{
		rules:  make(map[string]Rule),
		active: make(map[string]struct{}),
	}
	for _, rl := range rules {
		if err := r.Register(rl); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a rule. Duplicate ids are rejected.
func (r *Registry) Register(rl Rule) error {
	id := rl.ID()
	if _, exists := r.rules[id]; exists {
		return fmt.Errorf("rule %q already registered", id)
	}
	r.order = append(r.order, id)
	r.rules[id] = rl
	if !rl.DefaultOff() {
		r.active[id] = struct{}{}
	}
	return nil
}

// Rule returns the registered rule with the given id.
func (r *Registry) Rule(id string) (Rule, bool) {
	rl, ok := r.rules[id]
	return rl, ok
}

// All returns every registered rule in registration order.
func (r *Registry) All() []Rule {
	rules := make([]Rule, 0, len(r.order))
	for _, id := range r.order {
		rules = append(rules, r.rules[id])
	}
	return rules
}

// Active returns the currently active rules in registration order.
func (r *Registry) Active() []Rule {
	rules := make([]Rule, 0, len(r.active))
	for _, id := range r.order {
		if _, ok := r.active[id]; ok {
			rules = append(rules, r.rules[id])
		}
	}
	return rules
}

// IsActive reports whether the rule with the given id is active.
func (r *Registry) IsActive(id string) bool {
	_, ok := r.active[id]
	return ok
}

// IDs returns every registered rule id in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Select replaces the active set with the one Resolve computes for the
// given selection. The previous set is discarded wholesale rather than
// mutated flag by flag.
func (r *Registry) Select(sel Selection) {
	r.active = Resolve(r.active, r.order, sel)
}

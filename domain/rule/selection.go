package rule

// Selection is an ephemeral rule activation request: ids to disable, ids to
// enable, and whether enabling is exclusive. Both id lists are
// order-insensitive.
type Selection struct {
	disabled    map[string]struct{}
	enabled     map[string]struct{}
	enabledOnly bool
}

// NewSelection creates a Selection. When enabledOnly is set and enabledIDs
// is non-empty, every rule outside enabledIDs ends up inactive.
func NewSelection(disabledIDs, enabledIDs []string, enabledOnly bool) Selection {
	return Selection{
		disabled:    toSet(disabledIDs),
		enabled:     toSet(enabledIDs),
		enabledOnly: enabledOnly,
	}
}

// Disabled reports whether the id is requested to be disabled.
func (s Selection) Disabled(id string) bool {
	_, ok := s.disabled[id]
	return ok
}

// Enabled reports whether the id is requested to be enabled.
func (s Selection) Enabled(id string) bool {
	_, ok := s.enabled[id]
	return ok
}

// HasEnabled reports whether any id is requested to be enabled.
func (s Selection) HasEnabled() bool { return len(s.enabled) > 0 }

// EnabledOnly reports whether enabling is exclusive.
func (s Selection) EnabledOnly() bool { return s.enabledOnly }

// Resolve computes the next active-rule id set from the previous set, the
// registered ids and a selection. The steps run in exactly this order, and
// the order carries the precedence semantics:
//
//  1. Every disabled id is removed.
//  2. If any ids are enabled, each is added — including rules that default
//     to off. An id in both lists therefore ends up enabled.
//  3. If the selection is exclusive and any ids are enabled, every
//     registered id outside the enabled set is removed.
//
// An id in neither list keeps its previous state unless step 3 prunes it.
// The previous set is never mutated; callers swap in the returned set.
func Resolve(active map[string]struct{}, registered []string, sel Selection) map[string]struct{} {
	next := make(map[string]struct{}, len(active))
	for id := range active {
		next[id] = struct{}{}
	}

	for id := range sel.disabled {
		delete(next, id)
	}

	if sel.HasEnabled() {
		for id := range sel.enabled {
			next[id] = struct{}{}
		}
		if sel.enabledOnly {
			for _, id := range registered {
				if !sel.Enabled(id) {
					delete(next, id)
				}
			}
		}
	}
	return next
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Package rule defines the rule contracts, the rule registry with its
// activation resolver, and the factory registry for bilingual rules.
package rule

import (
	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/match"
)

// Rule is a monolingual check run against one analyzed sentence. The
// matching algorithm itself is an external collaborator; the engine only
// consumes the matches a rule reports. Match results use sentence-local
// coordinates (rune offsets from the sentence start, line 0 and column 0 at
// the origin).
type Rule interface {
	// ID returns the stable rule identifier.
	ID() string

	// Description returns a short human-readable description.
	Description() string

	// DefaultOff reports whether the rule is inactive unless explicitly
	// enabled.
	DefaultOff() bool

	// Match runs the rule against one analyzed sentence.
	Match(sentence analysis.Sentence) ([]match.RuleMatch, error)
}

// BitextRule is a bilingual check comparing an aligned source-language
// sentence with its target-language translation. Coordinates in the
// returned matches are local to the target sentence. A rule that has
// nothing to report returns an empty result.
type BitextRule interface {
	// ID returns the stable rule identifier.
	ID() string

	// Description returns a short human-readable description.
	Description() string

	// Match runs the rule against one aligned, analyzed sentence pair.
	Match(source, target analysis.Sentence) ([]match.RuleMatch, error)
}

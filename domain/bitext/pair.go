// Package bitext provides the aligned-pair data model and the contract
// with bilingual corpus readers.
package bitext

// AlignedPair is one source-language sentence paired with its corresponding
// target-language sentence from a parallel corpus. Pairs are consumed one at
// a time and not retained.
type AlignedPair struct {
	source string
	target string
}

// NewAlignedPair creates an AlignedPair.
func NewAlignedPair(source, target string) AlignedPair {
	return AlignedPair{source: source, target: target}
}

// Source returns the source-language sentence.
func (p AlignedPair) Source() string { return p.source }

// Target returns the target-language sentence.
func (p AlignedPair) Target() string { return p.target }

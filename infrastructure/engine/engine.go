// Package engine provides the reference analysis pipeline: a naive
// sentence tokenizer, a whitespace analyzer and regex-based pattern rules
// loaded from a YAML rule file. It stands in for the full external
// tokenizer/tagger/matcher collaborators; the core services only depend on
// the domain contracts it implements.
package engine

import (
	"context"
	"unicode"

	"github.com/veritext/veritext/domain/analysis"
)

// Engine is the reference analysis.Engine implementation.
type Engine struct{}

// New creates the reference engine.
func New() Engine {
	return Engine{}
}

// TokenizeSentences splits text after runs of sentence-ending punctuation
// followed by whitespace. The whitespace run stays attached to the
// preceding sentence so that the concatenation of all sentences equals the
// input — the position tracker depends on that.
func (Engine) TokenizeSentences(_ context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		if !isSentenceEnd(runes[i]) {
			i++
			continue
		}
		// Consume the punctuation run, then any trailing whitespace.
		for i < len(runes) && isSentenceEnd(runes[i]) {
			i++
		}
		if i < len(runes) && !unicode.IsSpace(runes[i]) {
			continue
		}
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		sentences = append(sentences, string(runes[start:i]))
		start = i
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences, nil
}

// Analyze produces whitespace-delimited tokens with rune start offsets.
// The reference pipeline assigns no part-of-speech tags.
func (Engine) Analyze(_ context.Context, sentence string) (analysis.Sentence, error) {
	var tokens []analysis.Token
	runes := []rune(sentence)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		tokens = append(tokens, analysis.NewToken(string(runes[start:i]), start))
	}
	return analysis.NewSentence(sentence, tokens), nil
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

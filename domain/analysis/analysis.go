// Package analysis defines the contract with the external tokenizer/tagger
// pipeline that produces analyzed sentences for rule matching.
package analysis

import "context"

// Token is a single analyzed token within a sentence: its surface form, its
// rune offset from the sentence start, and any part-of-speech tags the
// tagger assigned. Immutable value object.
type Token struct {
	surface  string
	startPos int
	tags     []string
}

// NewToken creates a Token.
func NewToken(surface string, startPos int, tags ...string) Token {
	t := Token{surface: surface, startPos: startPos}
	if len(tags) > 0 {
		t.tags = make([]string, len(tags))
		copy(t.tags, tags)
	}
	return t
}

// Surface returns the token's surface form.
func (t Token) Surface() string { return t.surface }

// StartPos returns the token's rune offset from the sentence start.
func (t Token) StartPos() int { return t.startPos }

// Tags returns the part-of-speech tags assigned to the token.
func (t Token) Tags() []string {
	tags := make([]string, len(t.tags))
	copy(tags, t.tags)
	return tags
}

// Sentence is one analyzed sentence: the raw sentence text plus its tokens.
type Sentence struct {
	text   string
	tokens []Token
}

// NewSentence creates an analyzed Sentence.
func NewSentence(text string, tokens []Token) Sentence {
	s := Sentence{text: text}
	if len(tokens) > 0 {
		s.tokens = make([]Token, len(tokens))
		copy(s.tokens, tokens)
	}
	return s
}

// Text returns the raw sentence text.
func (s Sentence) Text() string { return s.text }

// Tokens returns the analyzed tokens in sentence order.
func (s Sentence) Tokens() []Token {
	tokens := make([]Token, len(s.tokens))
	copy(tokens, s.tokens)
	return tokens
}

// Engine is the external analysis pipeline: it splits text into sentences
// and analyzes one sentence at a time.
type Engine interface {
	// TokenizeSentences splits text into sentences. Implementations must
	// preserve every rune of the input: the concatenation of the returned
	// sentences equals the input text, so that per-sentence match
	// coordinates can be shifted to document coordinates by counting runes.
	TokenizeSentences(ctx context.Context, text string) ([]string, error)

	// Analyze runs the tokenizer/tagger pipeline on a single sentence.
	Analyze(ctx context.Context, sentence string) (Sentence, error)
}

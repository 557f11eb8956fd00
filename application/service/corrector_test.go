package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext/domain/bitext"
)

func TestCorrectText(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh", suggestions: []string{"The", "Ten"}})
	corrector := NewCorrector(checker)

	corrected, err := corrector.CorrectText(context.Background(), "Teh cat\nTeh dog")
	require.NoError(t, err)
	assert.Equal(t, "The cat\nThe dog", corrected)
}

func TestCorrectTextNoMatches(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh", suggestions: []string{"The"}})
	corrector := NewCorrector(checker)

	corrected, err := corrector.CorrectText(context.Background(), "All fine here")
	require.NoError(t, err)
	assert.Equal(t, "All fine here", corrected)
}

func TestCorrectTextIsIdempotent(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh", suggestions: []string{"The"}})
	corrector := NewCorrector(checker)

	once, err := corrector.CorrectText(context.Background(), "Teh cat")
	require.NoError(t, err)
	twice, err := corrector.CorrectText(context.Background(), once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestCorrectPair(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh", suggestions: []string{"The"}})
	corrector := NewCorrector(checker)

	corrected, err := corrector.CorrectPair(context.Background(), "le chat", "Teh cat")
	require.NoError(t, err)
	assert.Equal(t, "The cat", corrected)
}

func TestCorrectStream(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh", suggestions: []string{"The"}})
	corrector := NewCorrector(checker)
	reader := &fakeReader{pairs: []bitext.AlignedPair{
		bitext.NewAlignedPair("chat", "Teh cat"),
		bitext.NewAlignedPair("ok", "All fine"),
	}}

	var out []string
	err := corrector.CorrectStream(context.Background(), reader, func(corrected string) error {
		out = append(out, corrected)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"The cat", "All fine"}, out)
}

package service

import (
	"context"
	"fmt"

	"github.com/veritext/veritext/domain/bitext"
	"github.com/veritext/veritext/domain/match"
)

// Corrector applies the first suggested replacement of every match to the
// checked text. If more than one replacement is suggested, the rest are
// ignored silently.
type Corrector struct {
	checker Checker
}

// NewCorrector creates a Corrector over a Checker.
func NewCorrector(checker Checker) Corrector {
	return Corrector{checker: checker}
}

// CorrectText checks the text and returns it with suggestions applied.
// Matches are sorted into ascending position order before application,
// which the offset-safe rewrite in match.Apply requires. Text that
// produces no matches is returned unchanged.
func (c Corrector) CorrectText(ctx context.Context, text string) (string, error) {
	result, err := c.checker.CheckText(ctx, text, 0)
	if err != nil {
		return "", err
	}
	matches := result.Matches()
	match.SortByPosition(matches)
	return match.Apply(text, matches), nil
}

// CorrectPair checks one aligned pair and returns the target sentence with
// suggestions applied.
func (c Corrector) CorrectPair(ctx context.Context, source, target string) (string, error) {
	matches, err := c.checker.CheckPair(ctx, source, target)
	if err != nil {
		return "", err
	}
	match.SortByPosition(matches)
	return match.Apply(target, matches), nil
}

// CorrectStream corrects aligned pairs from a reader one at a time, handing
// each corrected target sentence to fn as soon as it is produced. Pairs
// with no matches pass through unchanged. A non-nil error from fn stops the
// stream.
func (c Corrector) CorrectStream(ctx context.Context, reader bitext.Reader, fn func(corrected string) error) error {
	for reader.Scan() {
		pair := reader.Pair()
		corrected, err := c.CorrectPair(ctx, pair.Source(), pair.Target())
		if err != nil {
			return err
		}
		if fn != nil {
			if err := fn(corrected); err != nil {
				return err
			}
		}
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("read bitext corpus: %w", err)
	}
	return nil
}

// Package corpus provides bilingual corpus readers.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/veritext/veritext/domain/bitext"
)

// TabReader reads a tab-separated parallel corpus: one aligned pair per
// line, source sentence before the tab, target sentence after it. It keeps
// running line/column/offset counters over the target document and
// snapshots them at the moment each pair is yielded, as the reader
// contract requires.
type TabReader struct {
	scanner *bufio.Scanner
	lineNum int

	pair bitext.AlignedPair
	pos  bitext.Position
	next bitext.Position
	err  error
}

// NewTabReader creates a TabReader over r.
func NewTabReader(r io.Reader) *TabReader {
	return &TabReader{
		scanner: bufio.NewScanner(r),
		next:    bitext.NewPosition(0, 0, 0),
	}
}

// Scan advances to the next aligned pair. Empty lines are skipped without
// advancing the position counters; a line without a tab separator is a
// corpus format error that stops the scan.
func (t *TabReader) Scan() bool {
	if t.err != nil {
		return false
	}
	for t.scanner.Scan() {
		t.lineNum++
		line := t.scanner.Text()
		if line == "" {
			continue
		}
		source, target, ok := strings.Cut(line, "\t")
		if !ok {
			t.err = fmt.Errorf("line %d: missing tab separator", t.lineNum)
			return false
		}
		t.pair = bitext.NewAlignedPair(source, target)
		t.pos = t.next.WithCurrentLine(target)
		t.next = t.next.Advance(target + "\n")
		return true
	}
	t.err = t.scanner.Err()
	return false
}

// Pair returns the pair most recently read by Scan.
func (t *TabReader) Pair() bitext.AlignedPair { return t.pair }

// Position returns the position snapshot for the pair most recently read
// by Scan. The counters refer to the start of the pair's target sentence.
func (t *TabReader) Position() bitext.Position { return t.pos }

// Err returns the first error encountered during scanning, if any.
func (t *TabReader) Err() error { return t.err }

var _ bitext.Reader = (*TabReader)(nil)

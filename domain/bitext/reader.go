package bitext

// Reader yields aligned sentence pairs from a parallel corpus, one at a
// time, together with the document position of each pair.
//
// The iteration protocol follows bufio.Scanner: Scan advances to the next
// pair and reports whether one is available; Pair and Position return the
// current pair and the position snapshot taken when that pair was read.
// Readers must capture the snapshot synchronously with yielding — a stale
// snapshot makes adjusted match coordinates point at the wrong document
// location.
type Reader interface {
	// Scan advances to the next aligned pair.
	Scan() bool

	// Pair returns the pair most recently read by Scan.
	Pair() AlignedPair

	// Position returns the position snapshot for the pair most recently
	// read by Scan. The counters refer to the start of the pair's target
	// sentence within the target document.
	Position() Position

	// Err returns the first error encountered during scanning, if any.
	Err() error
}

package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabReaderPositions(t *testing.T) {
	input := "Hello\tHallo\nWorld\tWelt\n"
	reader := NewTabReader(strings.NewReader(input))

	require.True(t, reader.Scan())
	assert.Equal(t, "Hello", reader.Pair().Source())
	assert.Equal(t, "Hallo", reader.Pair().Target())
	assert.Equal(t, 0, reader.Position().SentenceOffset())
	assert.Equal(t, 0, reader.Position().LineCount())
	assert.Equal(t, "Hallo", reader.Position().CurrentLine())

	require.True(t, reader.Scan())
	assert.Equal(t, "Welt", reader.Pair().Target())
	// "Hallo\n" is six runes of target document.
	assert.Equal(t, 6, reader.Position().SentenceOffset())
	assert.Equal(t, 1, reader.Position().LineCount())
	assert.Equal(t, 0, reader.Position().ColumnCount())

	assert.False(t, reader.Scan())
	assert.NoError(t, reader.Err())
}

func TestTabReaderSkipsEmptyLines(t *testing.T) {
	input := "a\tb\n\n\nc\td\n"
	reader := NewTabReader(strings.NewReader(input))

	require.True(t, reader.Scan())
	require.True(t, reader.Scan())
	assert.Equal(t, "d", reader.Pair().Target())
	// The skipped blank lines contribute nothing to the target document.
	assert.Equal(t, 2, reader.Position().SentenceOffset())
	assert.False(t, reader.Scan())
}

func TestTabReaderMissingTab(t *testing.T) {
	reader := NewTabReader(strings.NewReader("a\tb\nno separator here\n"))

	require.True(t, reader.Scan())
	assert.False(t, reader.Scan())
	require.Error(t, reader.Err())
	assert.Contains(t, reader.Err().Error(), "line 2")
}

func TestTabReaderMultibyteTargets(t *testing.T) {
	reader := NewTabReader(strings.NewReader("x\täöü\ny\tz\n"))

	require.True(t, reader.Scan())
	require.True(t, reader.Scan())
	assert.Equal(t, 4, reader.Position().SentenceOffset(), "offsets count runes")
}

func TestTabReaderEmptyInput(t *testing.T) {
	reader := NewTabReader(strings.NewReader(""))
	assert.False(t, reader.Scan())
	assert.NoError(t, reader.Err())
}

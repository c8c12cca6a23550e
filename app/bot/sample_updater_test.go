package bot

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleUpdater(t *testing.T) {
	file := filepath.Join(t.TempDir(), "samples.txt")
	upd := NewSampleUpdater(file)

	require.NoError(t, upd.Append("first sample"))
	require.NoError(t, upd.Append("second sample"))

	reader, err := upd.Reader()
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "first sample\nsecond sample\n", string(data))
}

func TestSampleUpdater_Duplicates(t *testing.T) {
	file := filepath.Join(t.TempDir(), "samples.txt")
	upd := NewSampleUpdater(file)

	require.NoError(t, upd.Append("a sample"))
	require.NoError(t, upd.Append("A Sample")) // case-insensitive duplicate skipped
	require.NoError(t, upd.Append("a sample"))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "a sample\n", string(data))
}

func TestSampleUpdater_FlattensNewlines(t *testing.T) {
	file := filepath.Join(t.TempDir(), "samples.txt")
	upd := NewSampleUpdater(file)

	require.NoError(t, upd.Append("line one\nline two"))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "line one line two\n", string(data))
}

func TestSampleUpdater_ReaderMissingFile(t *testing.T) {
	upd := NewSampleUpdater(filepath.Join(t.TempDir(), "nope.txt"))
	_, err := upd.Reader()
	assert.Error(t, err)
}

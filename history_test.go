package liso

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AddLine_StripsDuplicatesByDefault(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.AddLine("a"))
	require.NoError(t, h.AddLine("b"))
	require.NoError(t, h.AddLine("a"))
	assert.Equal(t, []string{"b", "a"}, h.Lines())
}

func TestHistory_AddLine_KeepsDuplicatesWhenDisabled(t *testing.T) {
	h := NewHistory()
	h.SetStripDuplicates(false)
	require.NoError(t, h.AddLine("a"))
	require.NoError(t, h.AddLine("a"))
	assert.Equal(t, []string{"a", "a"}, h.Lines())
}

func TestHistory_AddLine_EnforcesLimit(t *testing.T) {
	h := NewHistory()
	h.SetStripDuplicates(false)
	h.SetLimit(3)
	for _, line := range []string{"1", "2", "3", "4"} {
		require.NoError(t, h.AddLine(line))
	}
	assert.Equal(t, []string{"2", "3", "4"}, h.Lines())
}

func TestHistory_AddLine_UnlimitedWhenZero(t *testing.T) {
	h := NewHistory()
	h.SetStripDuplicates(false)
	h.SetLimit(0)
	for i := 0; i < 200; i++ {
		require.NoError(t, h.AddLine("x"))
	}
	assert.Len(t, h.Lines(), 200)
}

func TestHistory_ReadFrom_StripsBOMAndCR(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist")
	content := "\xef\xbb\xbfone\r\ntwo\r\nthree\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	h := NewHistory()
	n, err := h.ReadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"one", "two", "three"}, h.Lines())
}

func TestHistory_Swap_ReplacesLines(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.AddLine("a"))
	h.Swap([]string{"x", "y"})
	assert.Equal(t, []string{"x", "y"}, h.Lines())
}

func TestHistoryFromFile_AutosaveUsesAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist")

	h, err := HistoryFromFile(path)
	require.NoError(t, err)
	h.SetStripDuplicates(false)
	h.SetAutosaveInterval(1)

	require.NoError(t, h.AddLine("first"))
	require.NoError(t, h.AddLine("second"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(raw))

	_, err = os.Stat(path + "^")
	assert.True(t, os.IsNotExist(err), "build file should not survive a completed autosave")
	_, err = os.Stat(path + "~")
	assert.True(t, os.IsNotExist(err), "backup file should not survive a completed autosave")

	h2, err := HistoryFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, h2.Lines())
}

func TestHistoryFromFile_MissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does-not-exist")
	h, err := HistoryFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, h.Lines())
}

func TestHistory_Save_NoopWithoutHandler(t *testing.T) {
	h := NewHistory()
	assert.NoError(t, h.Save())
}

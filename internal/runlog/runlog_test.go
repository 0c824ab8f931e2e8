package runlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndList(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "runs.jsonl"))

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, log.Append(Entry{RunID: "r1", Task: "extract", Status: "complete", StartedAt: now, Rows: 10}))
	require.NoError(t, log.Append(Entry{RunID: "r2", Task: "score", Status: "failed", StartedAt: now, Error: "missing input"}))

	entries, err := log.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "r1", entries[0].RunID)
	assert.Equal(t, 10, entries[0].Rows)
	assert.Equal(t, "failed", entries[1].Status)
	assert.Equal(t, "missing input", entries[1].Error)
}

func TestList_MissingJournal(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "runs.jsonl"))
	entries, err := log.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_ToleratesPartialLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")
	log := New(path)
	require.NoError(t, log.Append(Entry{RunID: "r1", Task: "extract", Status: "complete"}))

	// Simulate a crash mid-append.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"run_id":"r2","task":`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	entries, err := log.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "r1", entries[0].RunID)
}

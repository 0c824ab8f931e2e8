// Package runlog keeps a flat-file journal of task runs, one JSON object
// per line, newest last.
package runlog

import (
	"bufio"
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
)

// Entry is one recorded task run.
type Entry struct {
	RunID       string    `json:"run_id"`
	Task        string    `json:"task"`
	Status      string    `json:"status"` // "complete" or "failed"
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Rows        int       `json:"rows"`
	Skipped     int       `json:"skipped"`
	Error       string    `json:"error,omitempty"`
}

// Log appends and lists entries in a JSONL journal file.
type Log struct {
	path string
}

// New creates a Log backed by the given path. The file is created on first
// append.
func New(path string) *Log {
	return &Log{path: path}
}

// Append records one run at the end of the journal.
func (l *Log) Append(e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return eris.Wrap(err, "runlog: marshal entry")
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return eris.Wrapf(err, "runlog: open %s", l.path)
	}
	defer f.Close() //nolint:errcheck

	if _, err := f.Write(append(data, '\n')); err != nil {
		return eris.Wrap(err, "runlog: append entry")
	}
	return nil
}

// List returns all entries in journal order. A missing journal is an empty
// list, not an error.
func (l *Log) List() ([]Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "runlog: open %s", l.path)
	}
	defer f.Close() //nolint:errcheck

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue // tolerate a partial trailing line
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return entries, eris.Wrap(err, "runlog: read journal")
	}
	return entries, nil
}

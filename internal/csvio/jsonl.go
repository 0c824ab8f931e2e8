package csvio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// WriteJSONL writes one JSON object per element of rows to path, atomically:
// the file is staged in the destination directory and renamed into place so
// a crash mid-write cannot leave a truncated artifact.
func WriteJSONL[T any](path string, rows []T) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return eris.Wrap(err, "csvio: encode jsonl row")
		}
	}
	return writeAtomic(path, buf.Bytes())
}

// ReadJSONL streams path line by line, unmarshaling each into T and passing
// it to fn. Unparseable lines are counted and skipped, never fatal; the
// skip count is returned so the caller can report it.
func ReadJSONL[T any](path string, fn func(T)) (skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, eris.Wrapf(err, "csvio: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var v T
		if err := json.Unmarshal(line, &v); err != nil {
			skipped++
			continue
		}
		fn(v)
	}
	if err := sc.Err(); err != nil {
		return skipped, eris.Wrapf(err, "csvio: read %s", path)
	}
	return skipped, nil
}

// WriteJSON writes v as pretty-printed JSON to path, atomically.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "csvio: marshal json")
	}
	return writeAtomic(path, append(data, '\n'))
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return eris.Wrapf(err, "csvio: create temp in %s", dir)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return eris.Wrap(err, "csvio: write temp")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return eris.Wrap(err, "csvio: sync temp")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return eris.Wrap(err, "csvio: close temp")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return eris.Wrapf(err, "csvio: rename to %s", path)
	}
	return nil
}

// Package audit appends a JSON line for every remote control operation to
// a journal file, and reads such journals back.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Operation names used in records.
const (
	OpBind        = "bind"
	OpDispatchOn  = "dispatch_on"
	OpDispatchOff = "dispatch_off"
	OpUndoLast    = "undo_last"
)

// Record is one journal line.
type Record struct {
	Seq        uint64    `json:"seq"`
	Operation  string    `json:"operation"`
	Slot       *int      `json:"slot,omitempty"`
	On         string    `json:"on,omitempty"`
	Off        string    `json:"off,omitempty"`
	Undone     *bool     `json:"undone,omitempty"`
	Error      string    `json:"error,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Journal writes records as JSON lines. It is safe for concurrent use.
type Journal struct {
	mu     sync.Mutex
	enc    *json.Encoder
	closer io.Closer
	seq    uint64
	err    error
	now    func() time.Time
}

// NewJournal writes records to w.
func NewJournal(w io.Writer) *Journal {
	j := &Journal{enc: json.NewEncoder(w), now: time.Now}
	if c, ok := w.(io.Closer); ok {
		j.closer = c
	}
	return j
}

// OpenFile opens path for appending, creating it and its directory if needed.
func OpenFile(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal %q: %w", path, err)
	}
	return NewJournal(f), nil
}

// Append stamps rec with the next sequence number and the current time and
// writes it. The first write error is kept and returned by Err.
func (j *Journal) Append(rec Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.seq++
	rec.Seq = j.seq
	rec.RecordedAt = j.now().UTC()

	if err := j.enc.Encode(rec); err != nil {
		err = fmt.Errorf("append record %d: %w", rec.Seq, err)
		if j.err == nil {
			j.err = err
		}
		return err
	}
	return nil
}

// Err returns the first write error, if any.
func (j *Journal) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Close closes the underlying writer when it is an io.Closer.
func (j *Journal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}

// ReadRecords decodes every record in r, in the order they were written.
func ReadRecords(r io.Reader) ([]Record, error) {
	var out []Record
	dec := json.NewDecoder(r)
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("decode record %d: %w", len(out)+1, err)
		}
		out = append(out, rec)
	}
}

// ReadFile reads every record from the journal at path. A missing file
// holds no records.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return ReadRecords(f)
}

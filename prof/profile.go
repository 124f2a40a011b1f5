// Package prof collects named timing measurements for the key-generation
// pipeline stages.
package prof

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start with the given name.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// Scoped returns a closure recording the elapsed time under name, for use
// as `defer prof.Scoped("label")()`.
func Scoped(name string) func() {
	start := time.Now()
	return func() { Track(start, name) }
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// WriteReport writes the collected entries to w, one per line, and clears
// them.
func WriteReport(w io.Writer) error {
	for _, e := range SnapshotAndReset() {
		if _, err := fmt.Fprintf(w, "%-24s %v\n", e.Label, e.Dur); err != nil {
			return err
		}
	}
	return nil
}

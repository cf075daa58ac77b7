package prof

import (
	"sort"
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

// Tracker collects labeled durations from concurrent stages. The zero
// value is ready to use.
type Tracker struct {
	mu      sync.Mutex
	entries []Entry
}

// Track logs the duration since start under the given label.
func (t *Tracker) Track(start time.Time, label string) {
	elapsed := time.Since(start)
	t.mu.Lock()
	t.entries = append(t.entries, Entry{Label: label, Dur: elapsed})
	t.mu.Unlock()
}

// Snapshot returns a copy of the collected entries in recording order.
func (t *Tracker) Snapshot() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// SnapshotAndReset returns the collected entries and clears them.
func (t *Tracker) SnapshotAndReset() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.entries
	t.entries = nil
	return out
}

// Totals aggregates the collected durations per label, sorted by label.
func (t *Tracker) Totals() []Entry {
	t.mu.Lock()
	byLabel := make(map[string]time.Duration, len(t.entries))
	for _, e := range t.entries {
		byLabel[e.Label] += e.Dur
	}
	t.mu.Unlock()
	out := make([]Entry, 0, len(byLabel))
	for label, dur := range byLabel {
		out = append(out, Entry{Label: label, Dur: dur})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

package executor

import (
	"sync"
	"time"
)

// DefaultHistoryLimit bounds the history log when no limit is configured.
const DefaultHistoryLimit = 50

// HistoryEntry records one execution for the history panel.
type HistoryEntry struct {
	QueryText string
	QueryID   string
	Label     string
	RunAt     time.Time
}

// History is a bounded, append-only log of executions. When the bound is
// reached the oldest entry is dropped.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []HistoryEntry
}

// NewHistory creates a history log holding at most limit entries. A
// non-positive limit falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Append records an entry, evicting the oldest when full.
func (h *History) Append(e HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Entries returns the log newest-first. The returned slice is a copy.
func (h *History) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HistoryEntry, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

// Len reports the number of stored entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

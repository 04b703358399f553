package editorlog

import (
	"log/slog"
	"sync"
	"time"
)

// Record is one log line kept for the log panel.
type Record struct {
	Time    time.Time
	Level   slog.Level
	Message string
	// Attrs is the record's attributes rendered as key=value pairs.
	Attrs string
}

// Ring keeps the newest records up to a fixed capacity. It is written from
// any goroutine and read by the UI thread.
type Ring struct {
	mu      sync.Mutex
	records []Record
	start   int
	size    int
	total   uint64
}

// NewRing returns a ring holding at most capacity records, minimum one.
func NewRing(capacity int) *Ring {
	return &Ring{records: make([]Record, max(capacity, 1))}
}

// Add appends rec, dropping the oldest record when full.
func (r *Ring) Add(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := len(r.records)
	if r.size < c {
		r.records[(r.start+r.size)%c] = rec
		r.size++
	} else {
		r.records[r.start] = rec
		r.start = (r.start + 1) % c
	}
	r.total++
}

// Records returns a copy of the kept records, oldest first.
func (r *Ring) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, r.size)
	for i := range out {
		out[i] = r.records[(r.start+i)%len(r.records)]
	}
	return out
}

// Total counts every record ever added, dropped ones included. The log
// panel compares it across frames to know when to scroll.
func (r *Ring) Total() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Len returns the number of kept records.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Clear drops every kept record. Total is unchanged.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start, r.size = 0, 0
	clear(r.records)
}

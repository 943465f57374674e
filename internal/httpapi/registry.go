package httpapi

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/abhisek/quizbook/internal/attempts"
	"github.com/abhisek/quizbook/internal/quiz"
)

// entry is one live session. mu serializes every operation on lc.
type entry struct {
	mu      sync.Mutex
	lc      *quiz.Lifecycle
	attempt attempts.Attempt
	touched atomic.Int64 // unix nanos of the last request
}

// registry holds live sessions keyed by attempt id.
type registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	now     func() time.Time
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]*entry), now: time.Now}
}

func (r *registry) add(e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touch(e)
	r.entries[e.attempt.ID] = e
}

func (r *registry) get(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e, ok
}

func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// touch marks e as used.
func (r *registry) touch(e *entry) {
	e.touched.Store(r.now().UnixNano())
}

// sweep drops sessions idle for longer than ttl and returns how many went.
func (r *registry) sweep(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl).UnixNano()

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.entries {
		if e.touched.Load() < cutoff {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

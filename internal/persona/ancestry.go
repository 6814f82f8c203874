package persona

import (
	"sync"
	"time"
)

// Ancestry is an id-indexed lineage table. Each recorded personality costs a
// fixed-size entry regardless of chain depth, so long-running populations
// never nest ancestor state.
type Ancestry struct {
	mu   sync.RWMutex
	byID map[string]lineageEntry
}

type lineageEntry struct {
	ParentID   string
	Generation int
	BirthTime  time.Time
}

func NewAncestry() *Ancestry {
	return &Ancestry{byID: make(map[string]lineageEntry)}
}

// Record registers a personality. Safe to call from any agent task.
func (a *Ancestry) Record(p *Personality) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.byID[p.ID] = lineageEntry{
		ParentID:   p.ParentID,
		Generation: p.Generation,
		BirthTime:  p.BirthTime,
	}
}

// Parent returns the parent id of id, if id is recorded and has one.
func (a *Ancestry) Parent(id string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	e, ok := a.byID[id]
	if !ok || e.ParentID == "" {
		return "", false
	}
	return e.ParentID, true
}

// Born returns the recorded birth time of id.
func (a *Ancestry) Born(id string) (time.Time, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	e, ok := a.byID[id]
	return e.BirthTime, ok
}

// Generation returns the recorded generation index of id (0 for roots).
func (a *Ancestry) Generation(id string) (int, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	e, ok := a.byID[id]
	if !ok {
		return 0, false
	}
	return e.Generation, true
}

// Chain returns the id chain from the oldest recorded ancestor down to id.
// An unknown id yields an empty chain.
func (a *Ancestry) Chain(id string) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var rev []string
	seen := make(map[string]bool)
	for id != "" && !seen[id] {
		e, ok := a.byID[id]
		if !ok {
			break
		}
		rev = append(rev, id)
		seen[id] = true
		id = e.ParentID
	}
	out := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

// Len reports how many personalities have been recorded.
func (a *Ancestry) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.byID)
}

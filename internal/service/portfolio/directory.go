package portfolio

import (
	"context"
	"sync"
	"time"
)

// Lister is the subset of Service needed by the directory snapshot.
type Lister interface {
	ListAll(ctx context.Context) ([]*Profile, error)
}

// Directory holds a point-in-time snapshot of every profile for search.
// The snapshot carries a generation counter: Invalidate bumps the
// generation, and a refresh that started under an older generation is
// discarded on completion instead of overwriting newer state.
type Directory struct {
	mu     sync.Mutex
	lister Lister
	ttl    time.Duration
	gen    uint64
	cached []*Profile
	loaded time.Time
}

// NewDirectory creates a directory over the given lister. A snapshot older
// than ttl is refreshed on the next read.
func NewDirectory(lister Lister, ttl time.Duration) *Directory {
	return &Directory{lister: lister, ttl: ttl}
}

// Snapshot returns the cached profile list, refreshing it when missing or
// expired. A refresh whose generation is stale on completion still serves
// its own caller but never becomes the shared snapshot.
func (d *Directory) Snapshot(ctx context.Context) ([]*Profile, error) {
	d.mu.Lock()
	if d.cached != nil && time.Since(d.loaded) < d.ttl {
		cached := d.cached
		d.mu.Unlock()
		return cached, nil
	}
	gen := d.gen
	d.mu.Unlock()

	profiles, err := d.lister.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	if d.gen == gen {
		d.cached = profiles
		d.loaded = time.Now()
	}
	d.mu.Unlock()

	return profiles, nil
}

// Invalidate drops the snapshot and advances the generation so that any
// in-flight refresh is discarded when it completes.
func (d *Directory) Invalidate() {
	d.mu.Lock()
	d.gen++
	d.cached = nil
	d.loaded = time.Time{}
	d.mu.Unlock()
}

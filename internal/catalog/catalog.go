package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/contextutil"
	"github.com/tmanas06/uportfolio-sub000/internal/search"
)

// ErrNotLoaded is returned when no snapshot has been loaded yet.
var ErrNotLoaded = errors.New("content not loaded")

// Snapshot is one loaded content set together with its search index.
// Snapshots are immutable; a reload replaces the whole value.
type Snapshot struct {
	Version  string
	LoadedAt time.Time
	Content  *content.Content
	Index    []search.Record
}

// Catalog serves the current snapshot and rebuilds it from a content source.
type Catalog struct {
	source  content.Source
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serializes Reload
	reloads atomic.Int64
	now     func() time.Time
}

// New creates an empty Catalog backed by source. Call Reload before serving.
func New(source content.Source) *Catalog {
	return &Catalog{
		source: source,
		now:    time.Now,
	}
}

// Current returns the current snapshot, or nil before the first successful reload.
func (c *Catalog) Current() *Snapshot {
	return c.current.Load()
}

// Snapshot returns the current snapshot or ErrNotLoaded.
func (c *Catalog) Snapshot() (*Snapshot, error) {
	snap := c.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// Reloads returns how many successful reloads have happened.
func (c *Catalog) Reloads() int64 {
	return c.reloads.Load()
}

// Reload loads the content source, rebuilds the index and swaps in the new
// snapshot. On failure the previous snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) (*Snapshot, error) {
	logger := contextutil.LoggerFromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.now()
	loaded, err := c.source.Load(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "content reload failed, keeping previous snapshot", "error", err)
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	snap := &Snapshot{
		Version:  uuid.New().String(),
		LoadedAt: c.now(),
		Content:  loaded,
		Index:    search.BuildIndexFrom(loaded),
	}
	c.current.Store(snap)
	c.reloads.Add(1)

	logger.InfoContext(ctx, "content loaded",
		"version", snap.Version,
		"projects", len(loaded.Projects),
		"records", len(snap.Index),
		"duration", c.now().Sub(start),
	)
	return snap, nil
}

// Package spatial provides a thread-safe in-memory index of named areas,
// keyed by the geohash cells their pixelation touches. It is a reference
// consumer of the area algebra's pixelation contract: covering cells may
// overlap and may over-cover, and lookups always re-verify candidates
// against the exact area.
package spatial

import (
	"context"
	"errors"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	perrors "github.com/dpup/prefab/errors"
	"github.com/dpup/prefab/logging"

	"github.com/dpup/geo"
	"github.com/dpup/geo/area"
	"github.com/dpup/geo/geohash"
)

// Index errors.
var (
	ErrPrecisionRange = errors.New("spatial: precision must be in [1, 12]")
	ErrTooManyCells   = errors.New("spatial: area covers too many cells at this precision")
)

// maxCoverCells bounds how many cells a single Put may claim; oversized
// areas should be indexed at a coarser precision.
const maxCoverCells = 1 << 16

// entry is a stored area with its TTL bookkeeping.
type entry struct {
	id        string
	area      area.Area
	cells     []string
	createdAt time.Time
	expiresAt time.Time
}

// Index maps geohash cells to the areas covering them.
type Index struct {
	precision int

	mu      sync.RWMutex
	cells   map[string]map[string]*entry
	entries map[string]*entry
}

// NewIndex creates an index keyed at the given geohash resolution in
// characters (1 = coarsest cells, 12 = finest).
func NewIndex(precision int) (*Index, error) {
	if precision < 1 || precision > 12 {
		return nil, ErrPrecisionRange
	}
	return &Index{
		precision: precision,
		cells:     make(map[string]map[string]*entry),
		entries:   make(map[string]*entry),
	}, nil
}

// Put indexes an area under the given id, replacing any previous area with
// that id. A zero ttl means the entry never expires.
func (ix *Index) Put(id string, a area.Area, ttl time.Duration) error {
	cells, err := ix.coverCells(a)
	if err != nil {
		return err
	}

	now := time.Now()
	e := &entry{
		id:        id,
		area:      a,
		cells:     cells,
		createdAt: now,
	}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.removeLocked(id)
	ix.entries[id] = e
	for _, cell := range cells {
		bucket, ok := ix.cells[cell]
		if !ok {
			bucket = make(map[string]*entry)
			ix.cells[cell] = bucket
		}
		bucket[id] = e
	}
	return nil
}

// Get returns the area stored under id, if present and not expired.
func (ix *Index) Get(id string) (area.Area, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	e, ok := ix.entries[id]
	if !ok || e.stale(time.Now()) {
		return nil, false
	}
	return e.area, true
}

// Delete removes the area stored under id.
func (ix *Index) Delete(id string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.removeLocked(id)
}

// Len returns the number of indexed areas, including expired ones not yet
// cleaned up.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Query returns the ids of all areas containing the point, sorted.
func (ix *Index) Query(p geo.Point) []string {
	key, _ := geohash.Encode(p).SetResolution(ix.precision)

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	now := time.Now()
	var ids []string
	for id, e := range ix.cells[key.Hash()] {
		if e.stale(now) {
			continue
		}
		if e.area.ContainsPoint(p) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Search returns the ids of all areas overlapping the given area, sorted.
func (ix *Index) Search(a area.Area) ([]string, error) {
	cells, err := ix.coverCells(a)
	if err != nil {
		return nil, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	now := time.Now()
	seen := make(map[string]bool)
	var ids []string
	for _, cell := range cells {
		for id, e := range ix.cells[cell] {
			if seen[id] || e.stale(now) {
				continue
			}
			seen[id] = true
			if e.area.Overlaps(a) {
				ids = append(ids, id)
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// CleanupStale removes all expired entries and returns how many were
// dropped.
func (ix *Index) CleanupStale() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	now := time.Now()
	var removed int
	for id, e := range ix.entries {
		if e.stale(now) {
			ix.removeLocked(id)
			removed++
		}
	}
	return removed
}

// StartPeriodicCleanup starts a goroutine that drops expired entries at the
// given interval until ctx is done.
func (ix *Index) StartPeriodicCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				err, _ := perrors.ParseStack(debug.Stack())
				skipFrames := 3
				numFrames := 5
				logging.Errorw(ctx, "Spatial index cleanup: recovered from panic",
					"error", r, "error.stack_trace", err.MinimalStack(skipFrames, numFrames))
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ix.CleanupStale()
			}
		}
	}()
}

func (e *entry) stale(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (ix *Index) removeLocked(id string) {
	e, ok := ix.entries[id]
	if !ok {
		return
	}
	delete(ix.entries, id)
	for _, cell := range e.cells {
		if bucket, ok := ix.cells[cell]; ok {
			delete(bucket, id)
			if len(bucket) == 0 {
				delete(ix.cells, cell)
			}
		}
	}
}

// coverCells returns the deduplicated geohash cells at the index precision
// touched by the area's pixelation.
func (ix *Index) coverCells(a area.Area) ([]string, error) {
	// Cell extents at this precision: 5 bits per character, longitude takes
	// the extra bit of odd groups.
	lonBits := (5*ix.precision + 1) / 2
	latBits := 5 * ix.precision / 2
	lonWidth := 360 / float64(uint64(1)<<uint(lonBits))
	latHeight := 180 / float64(uint64(1)<<uint(latBits))

	seen := make(map[string]bool)
	var cells []string
	for _, r := range a.Pixelate() {
		sw, ne := r.SouthWest(), r.NorthEast()

		estimate := (r.Northing()/latHeight + 2) * (r.Easting()/lonWidth + 2)
		if estimate > maxCoverCells {
			return nil, ErrTooManyCells
		}

		for lat := sw.Lat(); ; lat += latHeight {
			if lat > ne.Lat() {
				lat = ne.Lat()
			}
			for lon := sw.Lon(); ; lon += lonWidth {
				if lon > ne.Lon() {
					lon = ne.Lon()
				}
				key, _ := geohash.Encode(geo.NewPointUnsafe(lat, lon)).SetResolution(ix.precision)
				if !seen[key.Hash()] {
					seen[key.Hash()] = true
					cells = append(cells, key.Hash())
				}
				if lon == ne.Lon() {
					break
				}
			}
			if lat == ne.Lat() {
				break
			}
		}
	}
	return cells, nil
}

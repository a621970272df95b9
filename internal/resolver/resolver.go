// Package resolver turns Drive folder ids into slash-separated paths.
package resolver

import (
	"context"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/driveindex/internal/drive"
	"github.com/dbsmedya/driveindex/internal/logger"
)

// Unknown is the placeholder path for folders whose metadata could not
// be fetched. Resolution is best-effort: one bad folder must not abort
// the whole report.
const Unknown = "Unknown"

// FolderPath is one memoized cache entry.
type FolderPath struct {
	ID   string
	Path string
}

// Resolver resolves folder paths by walking parent chains, memoizing by
// folder id so files sharing ancestors issue each lookup at most once.
// The cache is scoped to one Resolver and is not persisted.
type Resolver struct {
	api   drive.FilesAPI
	cache *orderedmap.OrderedMap[string, string]
	log   *logger.Logger
}

// New creates a Resolver with an empty cache.
func New(api drive.FilesAPI, log *logger.Logger) *Resolver {
	return &Resolver{
		api:   api,
		cache: orderedmap.NewOrderedMap[string, string](),
		log:   log,
	}
}

// folderLink is one fetched step of a parent chain, leaf-first.
type folderLink struct {
	id   string
	name string
}

// FolderPath returns the full path of a folder from its root-less
// ancestor chain, e.g. "Photos/2024". Folders with several parents are
// resolved through the first one only. A metadata error yields Unknown
// for the failing folder; descendants fetched in the same walk still
// get a path, prefixed with the placeholder.
func (r *Resolver) FolderPath(ctx context.Context, folderID string) string {
	if path, ok := r.cache.Get(folderID); ok {
		return path
	}

	// Climb the chain until a cached ancestor, a parentless root, or a
	// failure. The walk is iterative so deep hierarchies cannot exhaust
	// the stack; seen guards against cyclic parent graphs.
	var chain []folderLink
	seen := make(map[string]bool)
	base := ""

	id := folderID
	for id != "" {
		if cached, ok := r.cache.Get(id); ok {
			base = cached
			break
		}
		if seen[id] {
			r.log.Warnw("Cycle in folder parent chain, treating as root", "folder", id)
			break
		}
		seen[id] = true

		folder, err := r.api.GetFile(ctx, id)
		if err != nil {
			r.log.Warnw("Failed to fetch folder metadata, using placeholder",
				"folder", id,
				"error", err,
			)
			base = Unknown
			break
		}

		chain = append(chain, folderLink{id: id, name: folder.Name})
		if len(folder.Parents) == 0 {
			break
		}
		// Providers may report multiple parents; only the first is used.
		id = folder.Parents[0]
	}

	if len(chain) == 0 {
		return base
	}

	// Walk back down, memoizing every folder on the chain.
	path := base
	for i := len(chain) - 1; i >= 0; i-- {
		if path == "" {
			path = chain[i].name
		} else {
			path = path + "/" + chain[i].name
		}
		r.cache.Set(chain[i].id, path)
	}
	return path
}

// CacheSize returns the number of memoized folders.
func (r *Resolver) CacheSize() int {
	return r.cache.Len()
}

// CachedPaths returns the memoized folder paths in first-resolution
// order. Used for the post-scan debug dump.
func (r *Resolver) CachedPaths() []FolderPath {
	paths := make([]FolderPath, 0, r.cache.Len())
	for el := r.cache.Front(); el != nil; el = el.Next() {
		paths = append(paths, FolderPath{ID: el.Key, Path: el.Value})
	}
	return paths
}

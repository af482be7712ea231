package dijkstra

import (
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/pathkit/core"
)

// ErrBadCacheSize is returned by NewCache for a non-positive capacity.
var ErrBadCacheSize = errors.New("dijkstra: cache size must be positive")

type routeKey[V comparable] struct {
	source, target V
}

// Cache memoises Search results for one graph under a fixed option set.
// Entries are evicted least-recently-used once size is reached, and the
// whole cache is dropped as soon as the graph's Version changes.
//
// Cache is not safe for concurrent use.
type Cache[V comparable, W core.Weight] struct {
	g       *core.Graph[V, W]
	opts    []Option[W]
	routes  *lru.Cache[routeKey[V], Result[V, W]]
	version uint64
	hits    int
	misses  int
}

// NewCache returns a Cache over g holding at most size routes.
// opts are applied to every Search the cache performs.
func NewCache[V comparable, W core.Weight](g *core.Graph[V, W], size int, opts ...Option[W]) (*Cache[V, W], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCacheSize, size)
	}
	routes, err := lru.New[routeKey[V], Result[V, W]](size)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: creating cache: %w", err)
	}

	return &Cache[V, W]{
		g:       g,
		opts:    opts,
		routes:  routes,
		version: graphVersion(g),
	}, nil
}

// Search returns the cached result for (source, target) or computes and
// stores it. The returned Path is a private copy.
func (c *Cache[V, W]) Search(source, target V) Result[V, W] {
	if v := graphVersion(c.g); v != c.version {
		c.routes.Purge()
		c.version = v
	}

	key := routeKey[V]{source: source, target: target}
	res, ok := c.routes.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
		res = Search(c.g, source, target, c.opts...)
		c.routes.Add(key, res)
	}
	res.Path = slices.Clone(res.Path)

	return res
}

// ShortestPath is the cached counterpart of the package-level ShortestPath.
func (c *Cache[V, W]) ShortestPath(source, target V) []V {
	return c.Search(source, target).Path
}

// Stats reports how many lookups were served from the cache and how many
// ran a search.
func (c *Cache[V, W]) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Len returns the number of cached routes.
func (c *Cache[V, W]) Len() int {
	return c.routes.Len()
}

func graphVersion[V comparable, W core.Weight](g *core.Graph[V, W]) uint64 {
	if g == nil {
		return 0
	}

	return g.Version()
}

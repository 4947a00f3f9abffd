package search

import (
	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/numbers"
	"github.com/duskwarden/hemosearch/internal/query"
)

// Cache memoizes DevouredBy subquery resolution for the lifetime of exactly
// one top-level Search call. It must never be shared
// across distinct Search calls or mutated concurrently — construction is
// cheap (NewCache), so callers should make a fresh one per call rather than
// pool them.
type Cache struct {
	devouredBy map[string]map[string]struct{}

	// Hits and Misses count lookups against devouredBy, for callers (the API
	// layer's metrics wiring) that want per-search cache effectiveness
	// without internal/search depending on internal/metrics directly.
	Hits, Misses int
}

// NewCache returns an empty Cache ready for one Search call.
func NewCache() *Cache {
	return &Cache{devouredBy: make(map[string]map[string]struct{})}
}

// evalDevouredBy implements DevouredBy(q): a card matches iff its name
// appears in the cached set of names devoured by cards matching q. The
// cache key is the deterministic textual rendering of the subquery
// (query.Query.String), so structurally equal subqueries share one entry.
func evalDevouredBy(c cardmodel.Reader, sub *query.Query, all []cardmodel.Card, cache *Cache) numbers.Ternary {
	name, ok := c.GetText(cardmodel.TextName)
	if !ok {
		return numbers.Void
	}
	names := devouredByNames(sub, all, cache)
	if _, found := names[name]; found {
		return numbers.True
	}
	return numbers.False
}

func devouredByNames(sub *query.Query, all []cardmodel.Card, cache *Cache) map[string]struct{} {
	key := sub.String()
	if names, ok := cache.devouredBy[key]; ok {
		cache.Hits++
		return names
	}
	cache.Misses++

	var devoureeQuery *query.Query
	for i := range all {
		devourer := &all[i]
		if Eval(devourer, sub, all, cache) != numbers.True {
			continue
		}
		kws, _ := devourer.GetKeywords()
		for _, kw := range kws {
			if kw.Name != "devours" || kw.Data == nil || kw.Data.Kind != cardmodel.KeywordDataCardID {
				continue
			}
			projected := query.FromCardID(kw.Data.CardID)
			if devoureeQuery == nil {
				devoureeQuery = projected
				continue
			}
			devoureeQuery = &query.Query{
				Sort: query.Sort{Kind: query.SortNone},
				Restrictions: []query.QueryRestriction{
					{Kind: query.ROr, Left: devoureeQuery, Right: projected},
				},
			}
		}
	}

	names := make(map[string]struct{})
	if devoureeQuery != nil {
		for _, devouree := range searchWithCache(devoureeQuery, all, cache) {
			names[devouree.Name] = struct{}{}
		}
	}
	cache.devouredBy[key] = names
	return names
}

package search

import (
	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/numbers"
	"github.com/duskwarden/hemosearch/internal/query"
)

// Search evaluates q against every card in cards, in iterator order, keeps
// the ones that evaluate to Ternary True, and applies q.Sort. Each call
// gets its own fresh devoured-by Cache: cache lifetime is exactly one
// Search call and is never shared across calls.
func Search(q *query.Query, cards []cardmodel.Card) []cardmodel.Card {
	return searchWithCache(q, cards, NewCache())
}

// SearchWithCache is Search but lets the caller supply (and inspect
// afterward) the devoured-by Cache, for instrumentation — e.g. the API
// layer reads cache.Hits/cache.Misses once the call returns to feed the
// devoured-by cache-effectiveness metrics. The cache must still be fresh
// per call; reusing one across Search calls violates its lifetime contract.
func SearchWithCache(q *query.Query, cards []cardmodel.Card, cache *Cache) []cardmodel.Card {
	return searchWithCache(q, cards, cache)
}

// searchWithCache is Search's cache-threaded implementation, used both by
// the public entrypoint and recursively by devoured-by resolution (which
// must share the caller's cache rather than start a new one).
func searchWithCache(q *query.Query, cards []cardmodel.Card, cache *Cache) []cardmodel.Card {
	matched := make([]cardmodel.Card, 0, len(cards))
	for i := range cards {
		if Eval(&cards[i], q, cards, cache) == numbers.True {
			matched = append(matched, cards[i])
		}
	}
	applySort(q, matched)
	return matched
}

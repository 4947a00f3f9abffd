package handlers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/corpus"
	"github.com/duskwarden/hemosearch/internal/metrics"
	"github.com/duskwarden/hemosearch/internal/query"
	"github.com/duskwarden/hemosearch/internal/search"
)

// SearchHandler serves /api/search. It holds the catalog in memory (loaded
// once from the corpus store) and an LRU of already-parsed queries, since
// the same query string — a saved search, a repeated page load — is common
// and re-parsing is pure overhead ahead of the actual evaluation.
type SearchHandler struct {
	store      *corpus.Store
	queryCache *lru.Cache[string, *query.Query]

	mu    sync.RWMutex
	cards []cardmodel.Card
}

// NewSearchHandler loads the catalog from store and builds a parsed-query
// cache holding up to cacheSize distinct query strings.
func NewSearchHandler(store *corpus.Store, cacheSize int) (*SearchHandler, error) {
	cache, err := lru.New[string, *query.Query](cacheSize)
	if err != nil {
		return nil, err
	}
	h := &SearchHandler{store: store, queryCache: cache}
	if err := h.Reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// Reload re-reads the full catalog from the store. Call it after ingesting
// new cards; the handler otherwise serves whatever snapshot it loaded last.
func (h *SearchHandler) Reload() error {
	cards, err := h.store.Load()
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.cards = cards
	h.mu.Unlock()
	metrics.CorpusCardsTotal.Set(float64(len(cards)))
	return nil
}

func (h *SearchHandler) parse(raw string) (*query.Query, error) {
	if q, ok := h.queryCache.Get(raw); ok {
		metrics.ParsedQueryCacheHits.Inc()
		return q, nil
	}
	metrics.ParsedQueryCacheMisses.Inc()
	q, err := query.Parse(raw)
	if err != nil {
		return nil, err
	}
	h.queryCache.Add(raw, q)
	return q, nil
}

// Search handles GET /api/search?q=<query string>.
func (h *SearchHandler) Search(c *gin.Context) {
	raw := c.Query("q")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	q, err := h.parse(raw)
	if err != nil {
		metrics.ParseErrorsTotal.WithLabelValues(classifyParseError(err)).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.RLock()
	cards := h.cards
	h.mu.RUnlock()

	cache := search.NewCache()
	startTime := time.Now()
	results := search.SearchWithCache(q, cards, cache)
	metrics.SearchDuration.Observe(time.Since(startTime).Seconds())

	metrics.SearchResultsReturned.Observe(float64(len(results)))
	if cache.Hits+cache.Misses > 0 {
		metrics.DevouredByCacheHits.Add(float64(cache.Hits))
		metrics.DevouredByCacheMisses.Add(float64(cache.Misses))
	}

	c.JSON(http.StatusOK, cardmodel.CardSearchResult{
		Cards:      results,
		TotalCount: len(results),
		HasMore:    false,
	})
}

func classifyParseError(err error) string {
	var qerr *query.Error
	if errors.As(err, &qerr) {
		return qerr.Kind.String()
	}
	return "unknown"
}

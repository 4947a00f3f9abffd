package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/duskwarden/hemosearch/internal/metrics"
)

// visitorLimiter tracks a rate.Limiter per client IP. One bucket per
// visitor rather than one shared bucket, so a single abusive client can't
// starve everyone else.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	r        rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newVisitorLimiter(r rate.Limit, burst int) *visitorLimiter {
	vl := &visitorLimiter{
		visitors: make(map[string]*visitor),
		r:        r,
		burst:    burst,
	}
	go vl.evictStale()
	return vl
}

func (vl *visitorLimiter) allow(ip string) bool {
	vl.mu.Lock()
	v, ok := vl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(vl.r, vl.burst)}
		vl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	vl.mu.Unlock()
	return v.limiter.Allow()
}

// evictStale drops visitors that haven't made a request in ten minutes, so
// the map doesn't grow unbounded under a long-running process.
func (vl *visitorLimiter) evictStale() {
	for range time.Tick(time.Minute) {
		vl.mu.Lock()
		for ip, v := range vl.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(vl.visitors, ip)
			}
		}
		vl.mu.Unlock()
	}
}

// rateLimit rejects requests beyond r/burst per client IP with 429.
func rateLimit(vl *visitorLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !vl.allow(c.ClientIP()) {
			metrics.RateLimitedRequestsTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/marco2712/POS-PROCESOS/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*rateEntry)
	loginMapMu sync.Mutex

	apiRateMap   = make(map[string]*rateEntry)
	apiRateMapMu sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := getEntry(&loginMapMu, loginMap, c.ClientIP())

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(time.Minute)
		}

		entry.count++
		if entry.count > 20 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter returns a general-purpose sliding-window limiter per IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := getEntry(&apiRateMapMu, apiRateMap, c.ClientIP())

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

func getEntry(mu *sync.Mutex, m map[string]*rateEntry, ip string) *rateEntry {
	mu.Lock()
	defer mu.Unlock()
	entry, ok := m[ip]
	if !ok {
		entry = &rateEntry{}
		m[ip] = entry
	}
	return entry
}

// Expired entries are purged periodically so IPs that never return do not
// accumulate forever.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		purged := purgeMap(&loginMapMu, loginMap) + purgeMap(&apiRateMapMu, apiRateMap)
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
		}
	}
}

func purgeMap(mu *sync.Mutex, m map[string]*rateEntry) int {
	now := time.Now()
	mu.Lock()
	defer mu.Unlock()
	purged := 0
	for ip, entry := range m {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(m, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

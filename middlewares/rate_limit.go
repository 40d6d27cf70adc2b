package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// AnonRateLimit throttles unauthenticated account endpoints (register,
// resend-verification, password-reset request) per client IP.
func AnonRateLimit(every time.Duration, burst int) gin.HandlerFunc {
	clients := make(map[string]*clientLimiter)
	var mu sync.Mutex

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(every), burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()

		// drop idle clients so the map doesn't grow forever
		if len(clients) > 1000 {
			cutoff := time.Now().Add(-time.Hour)
			for k, v := range clients {
				if v.lastSeen.Before(cutoff) {
					delete(clients, k)
				}
			}
		}
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Request was throttled."})
			return
		}
		c.Next()
	}
}

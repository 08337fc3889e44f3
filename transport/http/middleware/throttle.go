package middleware

import (
	"corais/config"
	"corais/transport/http/response"
	"math"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// throttle is an in-process token bucket per client address, used on the
// submission route so one client cannot flood the bookings table.
type throttle struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

func newThrottle(cfg *config.Config) *throttle {
	booking := cfg.App.Booking

	return &throttle{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(booking.ThrottleRPS),
		burst:    booking.ThrottleBurst,
		ttl:      time.Duration(booking.ThrottleTTLMinutes) * time.Minute,
		now:      time.Now,
	}
}

// reserve takes a token for ip. It reports whether the request may proceed
// and, if not, how long until the next token.
func (t *throttle) reserve(ip string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.evict(now)

	v, ok := t.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.visitors[ip] = v
	}

	v.lastSeen = now

	if v.limiter.AllowN(now, 1) {
		return true, 0
	}

	if t.limit <= 0 {
		return false, t.ttl
	}

	tokens := v.limiter.TokensAt(now)
	wait := time.Duration(math.Ceil((1-tokens)/float64(t.limit)) * float64(time.Second))

	return false, wait
}

// evict drops idle visitors. Called with mu held.
func (t *throttle) evict(now time.Time) {
	for ip, v := range t.visitors {
		if now.Sub(v.lastSeen) > t.ttl {
			delete(t.visitors, ip)
		}
	}
}

func (a *appMiddleware) Throttle() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if a.throttle.burst <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			allowed, wait := a.throttle.reserve(a.clientIP(r))
			if !allowed {
				response.WithRetryAfter(w, int(math.Ceil(wait.Seconds())))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

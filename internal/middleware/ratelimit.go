package middleware

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a client exceeds its request allowance.
var ErrRateLimited = errors.New("too many requests, try again later")

// idle clients are forgotten after this long
const clientIdleTTL = 10 * time.Minute

// RateLimiter throttles selected procedures per client address using a
// token bucket for each client.
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	procedures map[string]bool
	now        func() time.Time

	mu      sync.Mutex
	clients *cache.Cache
}

// NewRateLimiter allows perMinute calls per client to each of procedures,
// with bursts of up to perMinute. An empty procedures list limits everything.
func NewRateLimiter(perMinute int, procedures ...string) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	procs := make(map[string]bool, len(procedures))
	for _, p := range procedures {
		procs[p] = true
	}
	return &RateLimiter{
		limit:      rate.Every(time.Minute / time.Duration(perMinute)),
		burst:      perMinute,
		procedures: procs,
		now:        time.Now,
		clients:    cache.New(clientIdleTTL, 2*clientIdleTTL),
	}
}

// Allow reports whether key may make another call now.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var limiter *rate.Limiter
	if v, ok := l.clients.Get(key); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	// Re-set on every call so the entry expires only after the client goes idle.
	l.clients.Set(key, limiter, cache.DefaultExpiration)
	return limiter.AllowN(l.now(), 1)
}

// Interceptor returns a Connect interceptor enforcing the limit.
func (l *RateLimiter) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if len(l.procedures) > 0 && !l.procedures[req.Spec().Procedure] {
				return next(ctx, req)
			}
			if !l.Allow(clientKey(req.Peer().Addr)) {
				return nil, connect.NewError(connect.CodeResourceExhausted, ErrRateLimited)
			}
			return next(ctx, req)
		}
	}
}

// clientKey strips the port so every connection from one host shares a bucket.
func clientKey(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

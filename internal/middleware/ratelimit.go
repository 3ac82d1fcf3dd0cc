package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Defaults for the fixed-window limiter.
const (
	DefaultRateLimitWindow = 15 * time.Minute
	DefaultRateLimitMax    = 100
	DefaultSweepInterval   = 5 * time.Minute
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed bool
	Count   int
	Limit   int
	ResetAt time.Time

	// RetryAfter is the number of whole seconds until the window resets.
	// It is only set on rejection and is always at least 1.
	RetryAfter int
}

// Remaining is the number of requests still admitted in the current window.
func (d Decision) Remaining() int {
	if d.Count >= d.Limit {
		return 0
	}
	return d.Limit - d.Count
}

type rateRecord struct {
	count   int
	resetAt time.Time
}

// RateLimitStore keeps one fixed-window counter per client key. Counters
// are independent: a key's state never affects another key.
type RateLimitStore struct {
	mu      sync.Mutex
	records map[string]*rateRecord
	window  time.Duration
	max     int
	now     func() time.Time

	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimitStore creates a store admitting max requests per window.
// now is the clock used by the middleware and the sweeper; nil uses time.Now.
func NewRateLimitStore(max int, window time.Duration, now func() time.Time) *RateLimitStore {
	if max <= 0 {
		max = DefaultRateLimitMax
	}
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	if now == nil {
		now = time.Now
	}
	return &RateLimitStore{
		records: make(map[string]*rateRecord),
		window:  window,
		max:     max,
		now:     now,
		stopCh:  make(chan struct{}),
	}
}

// Admit counts one request for key at time now.
//
// A missing or expired record starts a new window with count 1. Within a
// window the request is admitted while count < max. A window rolls over
// only once now is strictly after its reset time.
func (s *RateLimitStore) Admit(key string, now time.Time) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok || now.After(rec.resetAt) {
		rec = &rateRecord{count: 1, resetAt: now.Add(s.window)}
		s.records[key] = rec
		return Decision{Allowed: true, Count: rec.count, Limit: s.max, ResetAt: rec.resetAt}
	}
	if rec.count < s.max {
		rec.count++
		return Decision{Allowed: true, Count: rec.count, Limit: s.max, ResetAt: rec.resetAt}
	}

	retry := int(math.Ceil(rec.resetAt.Sub(now).Seconds()))
	if retry < 1 {
		retry = 1
	}
	return Decision{Allowed: false, Count: rec.count, Limit: s.max, ResetAt: rec.resetAt, RetryAfter: retry}
}

// Sweep deletes records whose window ended before now and returns how many
// were removed. A purged key simply starts a fresh window on its next request.
func (s *RateLimitStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, rec := range s.records {
		if now.After(rec.resetAt) {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *RateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// StartSweeper runs Sweep every interval until Close is called.
func (s *RateLimitStore) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(s.now())
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Close stops the sweeper. It is safe to call more than once.
func (s *RateLimitStore) Close() {
	s.once.Do(func() {
		close(s.stopCh)
	})
}

// RateLimitConfig configures the RateLimit middleware.
type RateLimitConfig struct {
	Store *RateLimitStore

	// KeyFunc identifies the client. Defaults to the remote IP.
	KeyFunc func(c *fiber.Ctx) string

	// OnReject is called for every rejected request.
	OnReject func(c *fiber.Ctx, key string)
}

// RateLimit rejects clients that exceed their window quota with 429 and a
// retry hint. Rejected requests never reach later handlers.
func RateLimit(cfg RateLimitConfig) fiber.Handler {
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c *fiber.Ctx) string { return c.IP() }
	}
	return func(c *fiber.Ctx) error {
		if cfg.Store == nil {
			return c.Next()
		}
		key := keyFunc(c)
		if key == "" {
			key = "unknown"
		}
		decision := cfg.Store.Admit(key, cfg.Store.now())

		c.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining()))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			if cfg.OnReject != nil {
				cfg.OnReject(c, key)
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(decision.RetryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":      "Too many requests",
				"retryAfter": decision.RetryAfter,
			})
		}
		return c.Next()
	}
}

package ratelimit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/LucasBaccaro/fullstack/internal/errors"
	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const keyPrefix = "tutor_ratelimit"

type Config struct {
	// limiter format, e.g. "20-M" for 20 requests per minute. empty disables limiting
	Rate string

	// optional shared store; in-process memory is used when empty
	RedisURL string
}

// per client IP request limiter
type Limiter struct {
	instance *limiter.Limiter
}

// builds a limiter from cfg. returns nil, nil when cfg.Rate is empty
func New(cfg Config) (*Limiter, error) {
	if strings.TrimSpace(cfg.Rate) == "" {
		return nil, nil
	}

	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", cfg.Rate, err)
	}

	store, err := newStore(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Limiter{instance: limiter.New(store, rate)}, nil
}

func newStore(redisURL string) (limiter.Store, error) {
	if redisURL == "" {
		return memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          keyPrefix,
			CleanUpInterval: time.Minute,
		}), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{
		Prefix:   keyPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	return store, nil
}

// rejects clients over the rate with 429. store failures are logged and
// the request is let through
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		ctx, err := l.instance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.FromContext(c.Request.Context()).Error("rate limiter unavailable",
				"ip", ip,
				"error", err,
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(ctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(ctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(ctx.Reset, 10))

		if ctx.Reached {
			logger.FromContext(c.Request.Context()).Warn("rate limit reached",
				"ip", ip,
				"path", c.Request.URL.Path,
			)

			c.Header("Retry-After", strconv.FormatInt(max(ctx.Reset-time.Now().Unix(), 1), 10))
			errors.TooManyRequests(c, "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

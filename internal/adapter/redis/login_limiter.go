package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

// LoginLimiter counts failed logins per email in Redis. Once the count
// reaches maxAttempts, Check rejects further attempts until the window
// that started with the first failure expires.
type LoginLimiter struct {
	client      *goredis.Client
	prefix      string
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a limiter using the given client.
func NewLoginLimiter(client *goredis.Client, prefix string, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		client:      client,
		prefix:      prefix,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func (l *LoginLimiter) key(email string) string {
	return l.prefix + ":login_fail:" + email
}

// Check returns domain.ErrTooManyLoginAttempts when the email is locked out.
func (l *LoginLimiter) Check(ctx context.Context, email string) error {
	count, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil
		}
		return fmt.Errorf("login limiter check: %w", err)
	}
	if count >= l.maxAttempts {
		return domain.ErrTooManyLoginAttempts
	}
	return nil
}

// RecordFailure increments the failure counter. The first failure starts the window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		return fmt.Errorf("login limiter reset: %w", err)
	}
	return nil
}

// NoopLimiter never limits. Used when Redis is not configured.
type NoopLimiter struct{}

func (NoopLimiter) Check(context.Context, string) error         { return nil }
func (NoopLimiter) RecordFailure(context.Context, string) error { return nil }
func (NoopLimiter) Reset(context.Context, string) error         { return nil }

package database

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const (
	// Cache key prefixes
	KeyContactThrottle = "azigroup:contact:throttle:"
	KeyRevokedToken    = "azigroup:admin:revoked:"
	KeyFailedLogins    = "azigroup:admin:failed:"

	redisTimeout = 2 * time.Second
)

func redisCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), redisTimeout)
}

// AllowHit increments the fixed-window counter stored at key and reports
// whether the caller is still within limit. The window starts with the first
// hit. Without Redis every hit is allowed.
func AllowHit(key string, limit int, window time.Duration) (bool, error) {
	if Redis == nil || limit <= 0 {
		return true, nil
	}
	ctx, cancel := redisCtx()
	defer cancel()

	count, err := Redis.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		if err := Redis.Expire(ctx, key, window).Err(); err != nil {
			return true, err
		}
	}
	return count <= int64(limit), nil
}

// AllowContactSubmission throttles contact form submissions per client IP.
func AllowContactSubmission(ip string, limit int) (bool, error) {
	return AllowHit(KeyContactThrottle+ip, limit, time.Hour)
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return KeyRevokedToken + hex.EncodeToString(sum[:])
}

// RevokeToken blacklists an admin JWT until it would have expired anyway.
func RevokeToken(token string, ttl time.Duration) error {
	if Redis == nil || ttl <= 0 {
		return nil
	}
	ctx, cancel := redisCtx()
	defer cancel()
	return Redis.Set(ctx, tokenKey(token), "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the token was revoked by a logout.
func IsTokenBlacklisted(token string) bool {
	if Redis == nil {
		return false
	}
	ctx, cancel := redisCtx()
	defer cancel()
	n, err := Redis.Exists(ctx, tokenKey(token)).Result()
	return err == nil && n > 0
}

// RecordFailedLogin counts a failed admin login for ip within a 15 minute
// window and returns the current count.
func RecordFailedLogin(ip string) int {
	if Redis == nil {
		return 0
	}
	ctx, cancel := redisCtx()
	defer cancel()
	key := KeyFailedLogins + ip
	count, err := Redis.Incr(ctx, key).Result()
	if err != nil {
		return 0
	}
	if count == 1 {
		Redis.Expire(ctx, key, 15*time.Minute)
	}
	return int(count)
}

// FailedLogins returns the number of recent failed logins for ip.
func FailedLogins(ip string) int {
	if Redis == nil {
		return 0
	}
	ctx, cancel := redisCtx()
	defer cancel()
	count, err := Redis.Get(ctx, KeyFailedLogins+ip).Int()
	if err != nil {
		return 0
	}
	return count
}

// ClearFailedLogins resets the counter after a successful login.
func ClearFailedLogins(ip string) {
	if Redis == nil {
		return
	}
	ctx, cancel := redisCtx()
	defer cancel()
	Redis.Del(ctx, KeyFailedLogins+ip)
}

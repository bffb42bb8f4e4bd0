package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/mkboutique/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// TokenBlacklist records tokens revoked before their natural expiry.
// Revocation works per token (JTI) or per user (every token issued up to now).
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	RevokeUser(ctx context.Context, userID int, ttl time.Duration) error
	IsUserRevoked(ctx context.Context, userID int, issuedAt time.Time) (bool, error)
}

const revocationPrefix = "mkb:revoked:"

func jtiKey(jti string) string                           { return revocationPrefix + "jti:" + jti }
func userKey(userID int) string                          { return revocationPrefix + "user:" + strconv.Itoa(userID) }
func issuedBefore(issuedAt time.Time, cutoff int64) bool { return issuedAt.Unix() <= cutoff }

// RedisRevocations keeps revocations in Redis so every instance sees them.
// Entries expire with the tokens they cover.
type RedisRevocations struct {
	client *redis.Client
}

// NewRedisRevocations dials Redis from cfg and pings it before returning
func NewRedisRevocations(ctx context.Context, cfg config.RedisConfig) (*RedisRevocations, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis revocation store unreachable: %w", err)
	}
	return NewRedisRevocationsWithClient(client), nil
}

// NewRedisRevocationsWithClient wraps an existing client
func NewRedisRevocationsWithClient(client *redis.Client) *RedisRevocations {
	return &RedisRevocations{client: client}
}

// Revoke marks jti as revoked for ttl. A non-positive ttl means the token
// already expired, so nothing is stored.
func (r *RedisRevocations) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, jtiKey(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token %s: %w", jti, err)
	}
	return nil
}

func (r *RedisRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("lookup revoked token %s: %w", jti, err)
	}
	return n == 1, nil
}

// RevokeUser stores the current unix time as the user's cutoff
func (r *RedisRevocations) RevokeUser(ctx context.Context, userID int, ttl time.Duration) error {
	if err := r.client.Set(ctx, userKey(userID), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("revoke tokens of user %d: %w", userID, err)
	}
	return nil
}

func (r *RedisRevocations) IsUserRevoked(ctx context.Context, userID int, issuedAt time.Time) (bool, error) {
	cutoff, err := r.client.Get(ctx, userKey(userID)).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("lookup revoked user %d: %w", userID, err)
	}
	return issuedBefore(issuedAt, cutoff), nil
}

// Close releases the Redis connection pool
func (r *RedisRevocations) Close() error {
	return r.client.Close()
}

// MemoryRevocations is the single-instance fallback used when Redis is
// disabled. Entries do not survive a restart.
type MemoryRevocations struct {
	mu      sync.Mutex
	tokens  map[string]time.Time // jti -> expiry
	cutoffs map[int]revocation   // user -> cutoff
	now     func() time.Time
}

type revocation struct {
	at      time.Time
	expires time.Time
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{
		tokens:  make(map[string]time.Time),
		cutoffs: make(map[int]revocation),
		now:     time.Now,
	}
}

func (m *MemoryRevocations) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	m.tokens[jti] = now.Add(ttl)
	return nil
}

func (m *MemoryRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expires, ok := m.tokens[jti]
	return ok && m.now().Before(expires), nil
}

// RevokeUser records now as the cutoff. A zero ttl keeps it until restart.
func (m *MemoryRevocations) RevokeUser(_ context.Context, userID int, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	entry := revocation{at: now}
	if ttl > 0 {
		entry.expires = now.Add(ttl)
	}
	m.cutoffs[userID] = entry
	return nil
}

func (m *MemoryRevocations) IsUserRevoked(_ context.Context, userID int, issuedAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.cutoffs[userID]
	if !ok || (!entry.expires.IsZero() && m.now().After(entry.expires)) {
		return false, nil
	}
	return issuedBefore(issuedAt, entry.at.Unix()), nil
}

// sweep drops expired entries; callers hold mu
func (m *MemoryRevocations) sweep(now time.Time) {
	for jti, expires := range m.tokens {
		if !now.Before(expires) {
			delete(m.tokens, jti)
		}
	}
	for id, entry := range m.cutoffs {
		if !entry.expires.IsZero() && now.After(entry.expires) {
			delete(m.cutoffs, id)
		}
	}
}

var (
	_ TokenBlacklist = (*RedisRevocations)(nil)
	_ TokenBlacklist = (*MemoryRevocations)(nil)
)

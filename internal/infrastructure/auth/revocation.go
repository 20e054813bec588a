package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smartsolar/backend/internal/infrastructure/config"
)

// RevocationStore tracks session tokens that were signed out before
// their expiry. Entries only need to live as long as the token would
// have.
type RevocationStore interface {
	// Revoke marks a token's JTI (JWT ID) as signed out for ttl.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked checks whether a token's JTI has been signed out.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisRevocationStore implements RevocationStore using Redis
type RedisRevocationStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRevocationStore creates a Redis-backed revocation store and
// verifies the connection.
func NewRedisRevocationStore(cfg config.RedisConfig) (*RedisRevocationStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for session revocation: %w", err)
	}

	return &RedisRevocationStore{
		client:    client,
		keyPrefix: "session:revoked:",
	}, nil
}

// NewRedisRevocationStoreWithClient creates a revocation store with an
// existing Redis client.
func NewRedisRevocationStoreWithClient(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{
		client:    client,
		keyPrefix: "session:revoked:",
	}
}

func (s *RedisRevocationStore) key(jti string) string {
	return s.keyPrefix + jti
}

// Revoke marks a token's JTI as signed out
func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session token: %w", err)
	}
	return nil
}

// IsRevoked checks whether a token's JTI has been signed out
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	exists, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}
	return exists > 0, nil
}

// Close closes the Redis client
func (s *RedisRevocationStore) Close() error {
	return s.client.Close()
}

// Ensure RedisRevocationStore implements RevocationStore
var _ RevocationStore = (*RedisRevocationStore)(nil)

// MemoryRevocationStore provides an in-process implementation for
// single-instance deployments and tests.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time // JTI -> entry expiration
}

// NewMemoryRevocationStore creates an empty in-process revocation store
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{revoked: make(map[string]time.Time)}
}

// Revoke marks a token's JTI as signed out
func (s *MemoryRevocationStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = time.Now().Add(ttl)
	return nil
}

// IsRevoked checks whether a token's JTI has been signed out
func (s *MemoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiration, exists := s.revoked[jti]
	if !exists {
		return false, nil
	}
	if time.Now().After(expiration) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}

// Ensure MemoryRevocationStore implements RevocationStore
var _ RevocationStore = (*MemoryRevocationStore)(nil)

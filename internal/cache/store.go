package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	verifyCodePrefix = "verify_code:"
	credentialPrefix = "ai_credential:"
	generationPrefix = "generation_inflight:"
	suggestionPrefix = "daily_suggestions:"

	// VerifyCodeTTL is how long a sign-up one-time code stays valid.
	VerifyCodeTTL = 15 * time.Minute

	// generationLockTTL bounds a stuck in-flight guard; the external model
	// call carries no timeout, so the lock must expire on its own.
	generationLockTTL = 5 * time.Minute
)

// Store is the key-value side of persistence: one-time verification codes,
// per-user generative-AI credentials, the generation in-flight guard, and
// the daily-suggestion cache. Reads default to absent, never error on a
// missing key.
type Store struct {
	client *redis.Client
}

// NewStore connects to Redis using REDIS_URL or REDIS_ADDR/REDIS_PASSWORD
// environment variables.
func NewStore(ctx context.Context) (*Store, error) {
	var opts *redis.Options

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		parsed, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		opts = parsed
	} else {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		opts = &redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Infof("Redis store connected at %s", opts.Addr)
	return &Store{client: client}, nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// SetVerifyCode stores the sign-up one-time code for an email.
func (s *Store) SetVerifyCode(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, verifyCodePrefix+email, code, VerifyCodeTTL).Err()
}

// GetVerifyCode returns the pending one-time code for an email, or "" when
// none is outstanding.
func (s *Store) GetVerifyCode(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, verifyCodePrefix+email).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get verification code: %w", err)
	}
	return code, nil
}

// DeleteVerifyCode removes a consumed one-time code.
func (s *Store) DeleteVerifyCode(ctx context.Context, email string) error {
	return s.client.Del(ctx, verifyCodePrefix+email).Err()
}

// SetCredential stores a user's generative-AI API key. The whole value is
// replaced on every write.
func (s *Store) SetCredential(ctx context.Context, userID, apiKey string) error {
	return s.client.Set(ctx, credentialPrefix+userID, apiKey, 0).Err()
}

// GetCredential returns the user's generative-AI API key, or "" when the
// user has not configured one.
func (s *Store) GetCredential(ctx context.Context, userID string) (string, error) {
	key, err := s.client.Get(ctx, credentialPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}
	return key, nil
}

// DeleteCredential removes a user's generative-AI API key.
func (s *Store) DeleteCredential(ctx context.Context, userID string) error {
	return s.client.Del(ctx, credentialPrefix+userID).Err()
}

// AcquireGenerationLock claims the per-user in-flight guard. It returns
// false when a prior generation for the same user has not completed.
func (s *Store) AcquireGenerationLock(ctx context.Context, userID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, generationPrefix+userID, "1", generationLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire generation lock: %w", err)
	}
	return ok, nil
}

// ReleaseGenerationLock releases the per-user in-flight guard.
func (s *Store) ReleaseGenerationLock(ctx context.Context, userID string) {
	if err := s.client.Del(ctx, generationPrefix+userID).Err(); err != nil {
		logrus.Warnf("Failed to release generation lock for user %s: %v", userID, err)
	}
}

// SetDailySuggestions caches the computed suggestions for a date+category.
func (s *Store) SetDailySuggestions(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	return s.client.Set(ctx, suggestionPrefix+key, data, ttl).Err()
}

// GetDailySuggestions loads cached suggestions into dest. Returns false when
// nothing is cached for the key.
func (s *Store) GetDailySuggestions(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, suggestionPrefix+key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get suggestions: %w", err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}
	return true, nil
}

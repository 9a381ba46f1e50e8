package redis_utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"assettrack/src/config"
	"assettrack/src/schemas"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps the logged-in user profiles server side, keyed by opaque
// session ID. This replaces any client-held roster or login flag: the client
// only ever sees its token.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore initializes a new Redis-backed session store.
func NewSessionStore(cfg *config.Config) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Databases.Redis.Host + ":" + cfg.Databases.Redis.Port,
		Username: cfg.Databases.Redis.Username,
		Password: cfg.Databases.Redis.Password, // Leave empty for no password
		DB:       cfg.Databases.Redis.Database, // Default DB index
	})

	// Test connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SessionStore{client: client}, nil
}

// SaveProfile stores a user profile under the session ID for the token lifetime.
func (s *SessionStore) SaveProfile(ctx context.Context, sessionID string, profile *schemas.UserProfile, ttl time.Duration) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, data, ttl).Err()
}

// GetProfile loads the profile for a session ID, or an error when the session
// is unknown or expired.
func (s *SessionStore) GetProfile(ctx context.Context, sessionID string) (*schemas.UserProfile, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	var profile schemas.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteProfile drops the session on logout.
func (s *SessionStore) DeleteProfile(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

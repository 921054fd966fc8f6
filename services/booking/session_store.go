package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"workhive/models"
	"workhive/utils"
)

// SessionTTL is how long an abandoned booking flow survives in the cache.
const SessionTTL = 30 * time.Minute

// SessionStore persists in-flight booking sessions between flow steps.
type SessionStore interface {
	Save(session *models.BookingSession) error
	Load(sessionID string) (*models.BookingSession, error)
	Delete(sessionID string) error
}

// RedisSessionStore keeps sessions as JSON in Redis with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore uses the shared session cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{Client: utils.GetSessionCacheClient()}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return "booking:session:" + sessionID
}

func (s *RedisSessionStore) Save(session *models.BookingSession) error {
	ctx := context.Background()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(session.SessionID), data, SessionTTL).Err(); err != nil {
		return NewTransportFailureError(fmt.Sprintf("failed to store booking session: %v", err))
	}
	return nil
}

func (s *RedisSessionStore) Load(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, NewSessionNotFoundError("booking session not found or expired")
	}
	if err != nil {
		return nil, NewTransportFailureError(fmt.Sprintf("failed to load booking session: %v", err))
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	if err := s.Client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return NewTransportFailureError(fmt.Sprintf("failed to delete booking session: %v", err))
	}
	return nil
}

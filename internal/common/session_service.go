package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long a login stays valid regardless of token
// expiry claims.
const sessionTTL = 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// SessionData is one console login stored in Redis. Deleting it revokes
// the bearer token bound to it before the JWT itself expires.
type SessionData struct {
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionService manages console sessions in Redis.
type SessionService struct {
	redis *redis.Client
}

func NewSessionService(redis *redis.Client) *SessionService {
	return &SessionService{redis: redis}
}

func sessionKey(id string) string {
	return "session:" + id
}

// CreateSession stores a new session and returns its id.
func (s *SessionService) CreateSession(ctx context.Context, userID int64, email, role string) (string, error) {
	now := time.Now()
	session := SessionData{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return session.SessionID, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	data, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession revokes a session. Deleting an unknown id is not an
// error.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, sessionKey(sessionID)).Err()
}

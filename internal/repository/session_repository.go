package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

const sessionKeyPrefix = "lab-access-session-"

// SessionRepository caches issued sessions in Redis with a TTL.
type SessionRepository struct {
	client *redis_v9.Client
}

func NewSessionRepository(client *redis_v9.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error saving session to cache: %w", err)
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.SessionID, val, ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, fmt.Errorf("session not found in cache: %w", err)
	}
	session := &models.Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

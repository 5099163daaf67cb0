package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

// SessionRepository resolves bearer tokens to sessions. Sessions are written
// by the identity collaborator; this service mostly reads, Save and Delete
// exist for provisioning and logout.
type SessionRepository struct {
	redis *redis.Client
}

func NewSessionRepository(redisClient *redis.Client) *SessionRepository {
	return &SessionRepository{redis: redisClient}
}

func (r *SessionRepository) ByToken(ctx context.Context, token string) (models.Session, error) {
	data, err := r.redis.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, derr.ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("redis get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return models.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session models.Session, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.redis.Set(ctx, sessionKey(session.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.redis.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", strings.TrimSpace(token))
}

package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store using Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration // audit log TTL
}

// NewRedisStore creates a Redis-backed audit store and verifies the
// connection.
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

// auditKey generates the Redis key for a session's audit log.
func (r *RedisStore) auditKey(sessionID string) string {
	return fmt.Sprintf("audit:%s", sessionID)
}

// loadLog loads a session log from Redis, returning an empty log when
// the session has no archive yet.
func (r *RedisStore) loadLog(ctx context.Context, sessionID string) (*SessionLog, error) {
	key := r.auditKey(sessionID)

	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &SessionLog{
			SessionID: sessionID,
			Records:   []TraceRecord{},
			Metadata: Metadata{
				StartedAt:    now,
				LastActivity: now,
				RecordCount:  0,
			},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load audit log from Redis: %w", err)
	}

	var sessionLog SessionLog
	if err := json.Unmarshal([]byte(data), &sessionLog); err != nil {
		return nil, fmt.Errorf("failed to parse audit log: %w", err)
	}

	return &sessionLog, nil
}

// AppendTrace archives one pipeline run under its session.
func (r *RedisStore) AppendTrace(ctx context.Context, rec TraceRecord) error {
	sessionLog, err := r.loadLog(ctx, rec.SessionID)
	if err != nil {
		return err
	}

	sessionLog.Records = append(sessionLog.Records, rec)
	sessionLog.Metadata.LastActivity = time.Now().UTC()
	sessionLog.Metadata.RecordCount = len(sessionLog.Records)
	if sessionLog.Metadata.RecordCount == 1 {
		sessionLog.Metadata.StartedAt = rec.CreatedAt
	}

	return r.saveLog(ctx, sessionLog)
}

// saveLog writes the session log back with its TTL refreshed.
func (r *RedisStore) saveLog(ctx context.Context, sessionLog *SessionLog) error {
	key := r.auditKey(sessionLog.SessionID)

	data, err := json.Marshal(sessionLog)
	if err != nil {
		return fmt.Errorf("failed to marshal audit log: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save audit log to Redis: %w", err)
	}

	return nil
}

// ListTraces retrieves all archived runs for a session.
func (r *RedisStore) ListTraces(ctx context.Context, sessionID string) ([]TraceRecord, error) {
	sessionLog, err := r.loadLog(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sessionLog.Records, nil
}

// ClearSession removes a session's audit log.
func (r *RedisStore) ClearSession(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.auditKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear audit log: %w", err)
	}
	return nil
}

// SessionExists checks whether a session has an audit log.
func (r *RedisStore) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	exists, err := r.client.Exists(ctx, r.auditKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check audit log existence: %w", err)
	}
	return exists > 0, nil
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Ping verifies the Redis connection is alive.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// redisstore — Redis-бэкенд credential-записи сессии.
//
// Предназначен для развёртываний с несколькими репликами гейтвея: все
// процессы разделяют одну staff-сессию. Запись хранится Redis-хэшем
// с полями access/refresh/user и TTL, равным остатку жизни записи.
//
// Известное ограничение: межпроцессной блокировки ротации refresh-токена
// нет — если две реплики одновременно уйдут в refresh, запись перезапишет
// последняя (single-flight действует только внутри процесса). Поведение
// осознанно оставлено как есть.
package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agussaepos/saepos-cms/internal/session"
)

const defaultKey = "cms:session"

// Storage — session.Storage поверх Redis.
type Storage struct {
	rdb *redis.Client
	key string
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если key пустой — используется "cms:session".
func New(redisURL, key string) (*Storage, error) {
	const op = "redisstore.New"

	if key == "" {
		key = defaultKey
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{rdb: rdb, key: key}, nil
}

// Load читает запись. Пустой/отсутствующий хэш — session.ErrNotFound.
func (s *Storage) Load(ctx context.Context) (*session.Record, error) {
	const op = "redisstore.Load"

	m, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("%s: %w", op, session.ErrNotFound)
	}

	rec := &session.Record{
		AccessToken:  m["access"],
		RefreshToken: m["refresh"],
		User:         []byte(m["user"]),
	}

	if expUnix, err := strconv.ParseInt(m["exp"], 10, 64); err == nil {
		rec.ExpiresAt = time.Unix(expUnix, 0).UTC()
	}

	return rec, nil
}

// Save замещает запись одним TxPipeline: HSET + EXPIRE до штампа истечения.
func (s *Storage) Save(ctx context.Context, rec *session.Record) error {
	const op = "redisstore.Save"

	kv := map[string]string{
		"access":  rec.AccessToken,
		"refresh": rec.RefreshToken,
		"user":    string(rec.User),
		"exp":     strconv.FormatInt(rec.ExpiresAt.Unix(), 10),
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, s.key)
	pipe.HSet(ctx, s.key, kv)
	if ttl := time.Until(rec.ExpiresAt); ttl > 0 {
		pipe.Expire(ctx, s.key, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Clear удаляет запись; отсутствие ключа — не ошибка.
func (s *Storage) Clear(ctx context.Context) error {
	const op = "redisstore.Clear"

	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close закрывает клиент Redis.
func (s *Storage) Close() error { return s.rdb.Close() }

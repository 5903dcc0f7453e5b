package auth

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionStore interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
}

// MemorySessionStore keeps sessions in a mutex-guarded map. Good enough for a
// single process; swap in the Redis store when running more than one.
type MemorySessionStore struct {
	mu    sync.RWMutex
	store map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{store: make(map[string]Session)}
}

func (m *MemorySessionStore) Put(ctx context.Context, s Session) error {
	m.mu.Lock()
	m.store[s.Token] = s
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionStore) Get(ctx context.Context, token string) (Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.store[token]
	return s, ok, nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.store, token)
	m.mu.Unlock()
	return nil
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(addr string, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func sessionKey(token string) string { return "session:" + token }

func (r *RedisSessionStore) Put(ctx context.Context, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(s.Token), data, r.ttl).Err()
}

func (r *RedisSessionStore) Get(ctx context.Context, token string) (Session, bool, error) {
	val, err := r.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return Session{}, false, err
	}
	return s, true, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKey(token)).Err()
}

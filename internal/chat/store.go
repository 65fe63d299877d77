package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"artisan-service/internal/domain"
)

// HistoryStore persists one conversation history per chat partner. It is the
// injected stand-in for the browser's local storage, so sessions can be
// backed by redis in the service and by memory in tests.
type HistoryStore interface {
	Load(ctx context.Context, partnerID string) ([]domain.Message, error)
	Save(ctx context.Context, partnerID string, msgs []domain.Message) error
	Delete(ctx context.Context, partnerID string) error
}

const historyKeyPrefix = "chat:"

// RedisStore keeps each history as a JSON blob under chat:<partnerID>.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context, partnerID string) ([]domain.Message, error) {
	raw, err := s.rdb.Get(ctx, historyKeyPrefix+partnerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var msgs []domain.Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *RedisStore) Save(ctx context.Context, partnerID string, msgs []domain.Message) error {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, historyKeyPrefix+partnerID, raw, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, partnerID string) error {
	return s.rdb.Del(ctx, historyKeyPrefix+partnerID).Err()
}

// MemoryStore is the in-process HistoryStore used in tests and dev mode.
type MemoryStore struct {
	mu        sync.Mutex
	histories map[string][]domain.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{histories: make(map[string][]domain.Message)}
}

func (s *MemoryStore) Load(_ context.Context, partnerID string) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.histories[partnerID]
	cp := make([]domain.Message, len(msgs))
	copy(cp, msgs)
	return cp, nil
}

func (s *MemoryStore) Save(_ context.Context, partnerID string, msgs []domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]domain.Message, len(msgs))
	copy(cp, msgs)
	s.histories[partnerID] = cp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, partnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.histories, partnerID)
	return nil
}

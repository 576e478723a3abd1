package services

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore keeps blobs in a map. It backs tests and DB-less local runs;
// data lives only for the session.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
	log  *zap.Logger
}

func NewMemoryStore(log *zap.Logger) *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage), log: log}
}

func (s *MemoryStore) Load(key string, out any) bool {
	raw, ok := s.LoadRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("corrupt stored blob, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *MemoryStore) LoadRaw(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	return raw, ok
}

func (s *MemoryStore) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("storage marshal failed, keeping in-memory state", zap.String("key", key), zap.Error(err))
		return
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
}

// Put stores a raw blob without marshaling, so tests can plant corrupt JSON.
func (s *MemoryStore) Put(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = json.RawMessage(raw)
	s.mu.Unlock()
}

package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore guarda as coleções em memória. Usado nos testes e como
// fallback quando nenhum backend durável está configurado.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, key string, dest any) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("store: decode %q failed, keeping default: %v", key, err)
	}
}

func (s *MemoryStore) Save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: encode %q failed, dropping write: %v", key, err)
		return
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
}

var _ Store = (*MemoryStore)(nil)

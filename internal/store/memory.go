package store

import (
	"context"
	"sync"
)

// MemoryStore guarda tudo em um map. É o driver padrão em desenvolvimento
// e o substrato dos testes. Assim como o Redis, notifica os watchers
// também nas próprias escritas — os consumidores são idempotentes.
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string]string
	watchers map[int]func(key string)
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:     make(map[string]string),
		watchers: make(map[int]func(key string)),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	fns := s.snapshotWatchers()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	fns := s.snapshotWatchers()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
	return nil
}

func (s *MemoryStore) Watch(fn func(key string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.watchers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

func (s *MemoryStore) Close() error {
	return nil
}

// chamado com o lock tomado
func (s *MemoryStore) snapshotWatchers() []func(key string) {
	fns := make([]func(key string), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	return fns
}

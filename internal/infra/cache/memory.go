package cache

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory guarda valores serializados em JSON, como o Redis faria, sem TTL.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	raw, ok := m.items[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *Memory) SetJSON(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

// Noop desativa o cache (REDIS_URL vazio).
type Noop struct{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

func (Noop) SetJSON(context.Context, string, any) error {
	return nil
}

func (Noop) Delete(context.Context, ...string) error {
	return nil
}

package store

import (
	"bytes"
	"sync"
)

// Memory is a DB that keeps documents in process memory. Nothing survives the
// process.
type Memory struct {
	docs map[string][]byte
	mu   sync.RWMutex
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return bytes.Clone(m.docs[key]), nil
}

func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[key] = bytes.Clone(value)

	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, key)

	return nil
}

func (m *Memory) Open() error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// NewMemory returns an empty in-memory DB.
func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string][]byte),
	}
}

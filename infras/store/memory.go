package store

import (
	"context"
	"fmt"
	"sync"

	"hotel/shared/constant"
)

type memoryStore struct {
	mu         sync.RWMutex
	data       map[string][]byte
	quotaBytes int
}

// NewMemory returns a process-local store. A positive quotaBytes caps the
// total size of all payloads, mirroring browser storage limits.
func NewMemory(quotaBytes int) Store {
	return &memoryStore{
		data:       make(map[string][]byte),
		quotaBytes: quotaBytes,
	}
}

func (m *memoryStore) Driver() string {
	return constant.StorageDriverMemory
}

func (m *memoryStore) Get(_ context.Context, collection string) ([]byte, bool, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.data[collection]
	if !ok {
		return nil, false, nil
	}

	return clone(payload), true, nil
}

func (m *memoryStore) Put(_ context.Context, collection string, payload []byte) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quotaBytes > 0 {
		used := len(payload)

		for name, existing := range m.data {
			if name != collection {
				used += len(existing)
			}
		}

		if used > m.quotaBytes {
			return fmt.Errorf("%w: %d of %d bytes", ErrQuotaExceeded, used, m.quotaBytes)
		}
	}

	m.data[collection] = clone(payload)

	return nil
}

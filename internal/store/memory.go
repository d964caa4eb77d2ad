package store

import "sync"

// Compile-time interface checks.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*DBStore)(nil)
)

// MemoryStore is an in-memory Store. Safe for concurrent access. Used in
// tests and anywhere persistence across restarts is not needed.
type MemoryStore struct {
	*blobStore
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobStore: newBlobStore(&memKV{values: make(map[string]string)})}
}

// memKV is the map-backed keyValue medium.
type memKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func (kv *memKV) Get(key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	value, ok := kv.values[key]
	return value, ok, nil
}

func (kv *memKV) Put(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.values[key] = value
	return nil
}

func (kv *memKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.values, key)
	return nil
}

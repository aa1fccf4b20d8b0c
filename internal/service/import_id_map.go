package service

import (
	"maps"
	"sync"

	"github.com/MKhiriev/go-pass-import/models"
)

// IdentifierMap translates imported identifiers of one entity kind into
// identifiers valid in the vault. It is safe for concurrent use.
type IdentifierMap struct {
	mu  sync.RWMutex
	ids map[string]string
}

func NewIdentifierMap(capacity int) *IdentifierMap {
	return &IdentifierMap{ids: make(map[string]string, capacity)}
}

// seedIdentity maps every stored identifier to itself.
func seedIdentity[T any](db map[string]T) *IdentifierMap {
	m := NewIdentifierMap(len(db) + 1)
	for id := range db {
		m.ids[id] = id
	}
	return m
}

// seedFolders is seedIdentity plus the root folder.
func seedFolders(db map[string]models.Folder) *IdentifierMap {
	m := seedIdentity(db)
	m.ids[models.DefaultFolderID] = models.DefaultFolderID
	return m
}

func (m *IdentifierMap) Set(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[from] = to
}

func (m *IdentifierMap) Get(from string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	to, ok := m.ids[from]
	return to, ok
}

func (m *IdentifierMap) Has(from string) bool {
	_, ok := m.Get(from)
	return ok
}

func (m *IdentifierMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ids)
}

// Snapshot returns a copy of the current mapping.
func (m *IdentifierMap) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.ids)
}

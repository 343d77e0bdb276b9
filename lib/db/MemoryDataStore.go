package db

import (
	"errors"
	"sort"
	"sync"

	"github.com/pixelboard/pixelboard-go/lib/models/db"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

// MemoryDataStore keeps everything in maps. Used by tests and by the
// memory DB type. Guarded by a single RWMutex; different canvases may be
// saved from different goroutines.
type MemoryDataStore struct {
	mu          sync.RWMutex
	canvasStore map[string]db.CanvasDB
	userStore   map[user.Id]db.UserDB
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		canvasStore: make(map[string]db.CanvasDB),
		userStore:   make(map[user.Id]db.UserDB),
	}
}

func (m *MemoryDataStore) DoesCanvasExist(canvasID string) (*bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.canvasStore[canvasID]
	return &ok, nil
}

func (m *MemoryDataStore) SaveCanvas(canvasID string, canvasDB db.CanvasDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.canvasStore[canvasID] = canvasDB
	return nil
}

func (m *MemoryDataStore) GetCanvas(canvasID string) (*db.CanvasDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	canvas, ok := m.canvasStore[canvasID]
	if !ok {
		return nil, errors.New(CanvasDoesNotExistError)
	}
	return &canvas, nil
}

func (m *MemoryDataStore) GetCanvasIds() (*[]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var canvasIds = make([]string, 0, len(m.canvasStore))
	for k := range m.canvasStore {
		canvasIds = append(canvasIds, k)
	}
	// creation order, matching the SQL backends
	sort.Slice(canvasIds, func(i, j int) bool {
		return m.canvasStore[canvasIds[i]].CreatedAt.Before(m.canvasStore[canvasIds[j]].CreatedAt)
	})
	return &canvasIds, nil
}

func (m *MemoryDataStore) RemoveCanvas(canvasID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.canvasStore[canvasID]; !ok {
		return errors.New(CanvasDoesNotExistError)
	}
	delete(m.canvasStore, canvasID)
	return nil
}

func (m *MemoryDataStore) SaveUser(userDB db.UserDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.userStore[userDB.ID] = userDB
	return nil
}

func (m *MemoryDataStore) GetUser(userID user.Id) (*db.UserDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	retrievedUser, ok := m.userStore[userID]
	if !ok {
		return nil, errors.New(UserNotFoundError)
	}
	return &retrievedUser, nil
}

func (m *MemoryDataStore) Ping() error {
	return nil
}

func (m *MemoryDataStore) Close() error {
	return nil
}

package canvas

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pixelboard/pixelboard-go/lib/db"
	"github.com/pixelboard/pixelboard-go/lib/exception"
	canvas2 "github.com/pixelboard/pixelboard-go/lib/models/canvas"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

// GlobalCanvasCache keeps loaded canvases in memory so the grid is not
// re-read from the store on every poll. Entries are invalidated on
// removal. Access goes through the Manager, which holds the locks.
type GlobalCanvasCache struct {
	canvasCache map[string]*canvas2.Canvas
}

func (g *GlobalCanvasCache) GetCanvas(canvasID string) *canvas2.Canvas {
	return g.canvasCache[canvasID]
}

func (g *GlobalCanvasCache) SetCanvas(canvasID string, canvas *canvas2.Canvas) {
	g.canvasCache[canvasID] = canvas
}

func (g *GlobalCanvasCache) DeleteCanvas(canvasID string) {
	delete(g.canvasCache, canvasID)
}

// Stats is a snapshot of manager counters, polled by the metrics
// collector and the health endpoint.
type Stats struct {
	ActiveCanvases int
	EditsApplied   int64
	EditsRejected  int64
}

// Manager composes the store and the canvas model into the boundary
// operations. The gate-check-then-mutate sequence of an edit is
// serialized per canvas: each canvas id owns a mutex held across check,
// mutation and persist. Edits to different canvases run in parallel.
// Statistics and grid reads take the same lock and return deep copies,
// so callers outside the lock observe either the pre- or post-state of
// an edit, never a torn one. The cached canvas itself never leaves the
// lock.
type Manager struct {
	store         db.DataStore
	mu            sync.Mutex
	locks         map[string]*sync.Mutex
	globalCache   *GlobalCanvasCache
	resolveName   func(user.Id) string
	editsApplied  atomic.Int64
	editsRejected atomic.Int64
}

// NewManager creates a canvas manager. resolveName maps a user id to a
// display name for the contributor leaderboard.
func NewManager(store db.DataStore, resolveName func(user.Id) string) *Manager {
	if resolveName == nil {
		resolveName = func(id user.Id) string { return id.String() }
	}
	return &Manager{
		store: store,
		locks: make(map[string]*sync.Mutex),
		globalCache: &GlobalCanvasCache{
			canvasCache: make(map[string]*canvas2.Canvas),
		},
		resolveName: resolveName,
	}
}

// canvasLock returns the mutex owned by canvasID, creating it on first
// use. The lock table itself is guarded by m.mu.
func (m *Manager) canvasLock(canvasID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[canvasID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[canvasID] = lock
	}
	return lock
}

// loadCanvas returns the cached canvas or loads it from the store.
// Callers must hold the canvas lock.
func (m *Manager) loadCanvas(canvasID string) (*canvas2.Canvas, error) {
	if cached := m.globalCache.GetCanvas(canvasID); cached != nil {
		return cached, nil
	}

	dbCanvas, err := m.store.GetCanvas(canvasID)
	if err != nil {
		return nil, exception.NewCanvasNotFoundError(canvasID)
	}

	loaded := canvas2.FromDB(dbCanvas)
	m.globalCache.SetCanvas(canvasID, loaded)
	return loaded, nil
}

func (m *Manager) CreateCanvas(title string, width int, height int, editInterval int64, ownerId user.Id) (*canvas2.Canvas, error) {
	newCanvas := canvas2.NewCanvas(uuid.NewString(), title, width, height, editInterval, ownerId, time.Now().UTC())

	lock := m.canvasLock(newCanvas.Id)
	lock.Lock()
	defer lock.Unlock()

	if err := m.store.SaveCanvas(newCanvas.Id, newCanvas.ToDB()); err != nil {
		return nil, exception.NewDatabaseError("error saving canvas", err)
	}

	m.globalCache.SetCanvas(newCanvas.Id, newCanvas)
	return newCanvas.Clone(), nil
}

// GetCanvas returns a snapshot of the canvas. The copy is taken under
// the canvas lock; the caller may read it (or marshal it) while edits
// continue on the live canvas.
func (m *Manager) GetCanvas(canvasID string) (*canvas2.Canvas, error) {
	lock := m.canvasLock(canvasID)
	lock.Lock()
	defer lock.Unlock()

	loaded, err := m.loadCanvas(canvasID)
	if err != nil {
		return nil, err
	}
	return loaded.Clone(), nil
}

// EditPixel validates the edit gate, applies the pixel mutation and
// persists the canvas, all under the canvas lock. The mutation runs on
// a working copy that replaces the cached canvas only after the save
// succeeds, so a failed save leaves the cache, the store and the user's
// cooldown exactly as they were. Rejections touch nothing.
func (m *Manager) EditPixel(canvasID string, x int, y int, color string, userId user.Id, now int64) error {
	lock := m.canvasLock(canvasID)
	lock.Lock()
	defer lock.Unlock()

	editedCanvas, err := m.loadCanvas(canvasID)
	if err != nil {
		return err
	}

	working := editedCanvas.Clone()
	if err := working.UpdatePixel(x, y, color, userId, now); err != nil {
		m.editsRejected.Add(1)
		return err
	}

	if err := m.store.SaveCanvas(canvasID, working.ToDB()); err != nil {
		return exception.NewDatabaseError("error saving canvas", err)
	}

	m.globalCache.SetCanvas(canvasID, working)
	m.editsApplied.Add(1)
	return nil
}

// GetStatistics computes the statistics from a snapshot taken under the
// canvas lock. Username resolution hits the user store, so it runs
// after the lock is released.
func (m *Manager) GetStatistics(canvasID string) (*canvas2.Statistics, error) {
	lock := m.canvasLock(canvasID)
	lock.Lock()
	statCanvas, err := m.loadCanvas(canvasID)
	if err != nil {
		lock.Unlock()
		return nil, err
	}
	snapshot := statCanvas.Clone()
	lock.Unlock()

	stats := snapshot.Statistics(m.resolveName)
	return &stats, nil
}

// RemoveCanvas deletes a canvas and all its state. Only the owner may
// delete; everyone else gets PermissionDenied and the canvas is left as
// it was.
func (m *Manager) RemoveCanvas(canvasID string, requesterId user.Id) error {
	lock := m.canvasLock(canvasID)
	lock.Lock()
	defer lock.Unlock()

	removedCanvas, err := m.loadCanvas(canvasID)
	if err != nil {
		return err
	}

	if removedCanvas.OwnerId != requesterId {
		return exception.NewPermissionDeniedError(canvasID)
	}

	if err := m.store.RemoveCanvas(canvasID); err != nil {
		return exception.NewDatabaseError("error removing canvas", err)
	}

	m.globalCache.DeleteCanvas(canvasID)
	return nil
}

// ListCanvases returns all canvases ordered by total contribution count
// descending. Ties keep store order, which is creation order.
func (m *Manager) ListCanvases() ([]*canvas2.Canvas, error) {
	canvasIds, err := m.store.GetCanvasIds()
	if err != nil {
		return nil, exception.NewDatabaseError("error listing canvases", err)
	}

	var canvases = make([]*canvas2.Canvas, 0, len(*canvasIds))
	for _, canvasId := range *canvasIds {
		listedCanvas, err := m.GetCanvas(canvasId)
		if err != nil {
			// removed between listing and loading
			continue
		}
		canvases = append(canvases, listedCanvas)
	}

	sort.SliceStable(canvases, func(i, j int) bool {
		return canvases[i].TotalContributions() > canvases[j].TotalContributions()
	})
	return canvases, nil
}

func (m *Manager) GetStats() (*Stats, error) {
	canvasIds, err := m.store.GetCanvasIds()
	if err != nil {
		return nil, err
	}

	return &Stats{
		ActiveCanvases: len(*canvasIds),
		EditsApplied:   m.editsApplied.Load(),
		EditsRejected:  m.editsRejected.Load(),
	}, nil
}

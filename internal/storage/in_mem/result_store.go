package in_mem

import (
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/report"
	"github.com/google/uuid"
)

const DefaultCapacity = 128

// Entry is a computed comparison kept around so it can be exported after it
// has been displayed.
type Entry struct {
	ID         uuid.UUID
	FirstName  string
	SecondName string
	Labels     report.Labels
	Result     compare.Result
	CreatedAt  time.Time
}

// ResultStore keeps the most recent comparisons in memory. When full, the
// oldest entry is evicted.
type ResultStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]Entry
	order       []uuid.UUID
	capacity    int
}

func NewResultStore(capacity int) *ResultStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ResultStore{
		storage:  make(map[uuid.UUID]Entry, capacity),
		capacity: capacity,
	}
}

func (s *ResultStore) Save(entry Entry) uuid.UUID {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.storage[entry.ID]; !ok {
		s.order = append(s.order, entry.ID)
	}
	s.storage[entry.ID] = entry

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.storage, oldest)
		slog.Debug("Evicted comparison result", "id", oldest)
	}

	return entry.ID
}

func (s *ResultStore) Get(id uuid.UUID) (Entry, bool) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	e, ok := s.storage[id]
	return e, ok
}

func (s *ResultStore) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return len(s.storage)
}

package quiz

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a quiz id or share id does not exist.
var ErrNotFound = errors.New("quizforge: quiz not found")

// Store persists shared quizzes. Implementations must be safe for
// concurrent use.
type Store interface {
	Save(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	GetByShareID(ctx context.Context, shareID string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, id int64, title string, data Quiz) (Record, error)
	Delete(ctx context.Context, id int64) error
}

// MemStore is the in-memory Store used in dev and tests.
type MemStore struct {
	mu      sync.RWMutex
	quizzes map[int64]Record
	nextID  int64
}

func NewMemStore() *MemStore {
	return &MemStore{quizzes: map[int64]Record{}, nextID: 1}
}

func (m *MemStore) Save(_ context.Context, rec Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = m.nextID
	m.nextID++
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	m.quizzes[rec.ID] = rec
	return rec, nil
}

func (m *MemStore) GetByID(_ context.Context, id int64) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.quizzes[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *MemStore) GetByShareID(_ context.Context, shareID string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.quizzes {
		if rec.ShareID == shareID {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

func (m *MemStore) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.quizzes))
	for _, rec := range m.quizzes {
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemStore) Update(_ context.Context, id int64, title string, data Quiz) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.quizzes[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	if title != "" {
		rec.Title = title
	}
	rec.Data = data
	rec.UpdatedAt = time.Now()
	m.quizzes[id] = rec
	return rec, nil
}

func (m *MemStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quizzes[id]; !ok {
		return ErrNotFound
	}
	delete(m.quizzes, id)
	return nil
}

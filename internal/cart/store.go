package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an untouched booking session survives before it
// is considered abandoned. Abandonment has no backend side effects.
const DefaultTTL = 30 * time.Minute

type entry struct {
	cart     *Cart
	lastUsed time.Time
}

// Store держит активные сессии корзин в памяти. Каждой корзиной владеет
// ровно одна сессия UI; блокировка нужна лишь потому, что HTTP-запросы
// одной сессии могут прийти с разных соединений.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uuid.UUID]*entry
}

// NewStore creates a session store with the given TTL (DefaultTTL if zero).
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:     ttl,
		entries: make(map[uuid.UUID]*entry),
	}
}

// Create opens a new booking session.
func (s *Store) Create(clientID int64, date time.Time) *Cart {
	c := New(clientID, date)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.entries[c.ID] = &entry{cart: c, lastUsed: time.Now()}
	return c
}

// Get returns an active session and refreshes its TTL.
func (s *Store) Get(id uuid.UUID) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	e, ok := s.entries[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	e.lastUsed = time.Now()
	return e.cart, nil
}

// Discard drops a session. Discarding an unknown session is a no-op:
// abandonment must always succeed.
func (s *Store) Discard(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *Store) purgeLocked() {
	deadline := time.Now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.lastUsed.Before(deadline) {
			delete(s.entries, id)
		}
	}
}

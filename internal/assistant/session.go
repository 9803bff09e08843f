package assistant

import (
	"sync"
	"time"

	"github.com/ecosmart/shop/internal/core"
)

const (
	// maxHistory bounds the number of exchanges kept per session.
	maxHistory = 10
	// maxProducts bounds the number of product mentions kept per session.
	maxProducts = 10
)

// session holds one conversation thread. Its mutex serializes appends for a
// single key so concurrent requests cannot lose updates against the bound.
type session struct {
	mu       sync.Mutex
	history  []core.Exchange
	products []core.ProductMention
}

// Store keeps bounded per-session conversation state in memory. Sessions are
// created lazily on first access and live for the process lifetime.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

// Snapshot is a point-in-time copy of a session's state. Callers may read
// and slice it freely without holding any lock.
type Snapshot struct {
	History  []core.Exchange
	Products []core.ProductMention
}

func (s *Store) session(key string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[key]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[key]; ok {
		return sess
	}
	sess = &session{}
	s.sessions[key] = sess
	return sess
}

// Get returns a snapshot of the session for key, creating an empty session
// if none exists. It never fails.
func (s *Store) Get(key string) Snapshot {
	sess := s.session(key)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	snap := Snapshot{
		History:  make([]core.Exchange, len(sess.history)),
		Products: make([]core.ProductMention, len(sess.products)),
	}
	copy(snap.History, sess.history)
	copy(snap.Products, sess.products)
	return snap
}

// AppendExchange records one query/reply pair and returns the resulting
// history length. The oldest exchange is dropped once the bound is reached.
func (s *Store) AppendExchange(key, query, reply string) int {
	sess := s.session(key)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.history = append(sess.history, core.Exchange{
		Query:     query,
		Response:  reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if len(sess.history) > maxHistory {
		sess.history = sess.history[len(sess.history)-maxHistory:]
	}
	return len(sess.history)
}

// AppendProducts records recommended products for future conversational
// reference. Duplicates are allowed; the oldest entries are dropped once the
// bound is reached.
func (s *Store) AppendProducts(key string, products []core.ProductMention) {
	if len(products) == 0 {
		return
	}

	sess := s.session(key)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.products = append(sess.products, products...)
	if len(sess.products) > maxProducts {
		sess.products = sess.products[len(sess.products)-maxProducts:]
	}
}

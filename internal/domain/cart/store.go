// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// snapshot wraps a cart together with the sequence of the request that
// produced it, so stale responses can be recognized after a restart too.
type snapshot struct {
	Seq       uint64    `json:"seq"`
	Cart      *Cart     `json:"cart"`
	AppliedAt time.Time `json:"applied_at"`
}

// Store holds the last known cart per session and guards against
// out-of-order responses: Begin issues a sequence when a request is sent,
// Apply discards any response whose sequence is older than the last one
// applied ("last write wins" by request-issue order, not arrival order).
//
// The in-process map is authoritative; Redis persistence is best-effort so
// snapshots survive restarts and can be shared between instances. The store
// is an explicit dependency of the handlers, not a package-level singleton.
type Store struct {
	mu        sync.Mutex
	issued    map[string]uint64
	applied   map[string]uint64
	snapshots map[string]*Cart

	redis  *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewStore creates a cart snapshot store. redisClient may be nil, in which
// case snapshots live only in process memory.
func NewStore(redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *Store {
	return &Store{
		issued:    make(map[string]uint64),
		applied:   make(map[string]uint64),
		snapshots: make(map[string]*Cart),
		redis:     redisClient,
		ttl:       ttl,
		logger:    logger,
	}
}

// Begin registers an outgoing cart request for the session and returns its
// sequence number. The caller passes the sequence back to Apply together
// with the response.
func (s *Store) Begin(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued[sessionID]++
	return s.issued[sessionID]
}

// Apply stores the cart returned for the given request sequence. It reports
// false when a newer request already completed, in which case the caller
// must discard the response instead of rendering it.
func (s *Store) Apply(ctx context.Context, sessionID string, seq uint64, c *Cart) bool {
	s.mu.Lock()
	if seq <= s.applied[sessionID] {
		s.mu.Unlock()
		return false
	}
	s.applied[sessionID] = seq
	s.snapshots[sessionID] = c
	s.mu.Unlock()

	s.persist(ctx, sessionID, seq, c)
	return true
}

// Get returns the last applied snapshot for the session. When the process
// has none it falls back to Redis; a session with no cart at all yields an
// empty cart, not an error.
func (s *Store) Get(ctx context.Context, sessionID string) *Cart {
	s.mu.Lock()
	if c, ok := s.snapshots[sessionID]; ok {
		s.mu.Unlock()
		return c
	}
	s.mu.Unlock()

	if s.redis != nil {
		data, err := s.redis.Get(ctx, s.key(sessionID)).Result()
		if err == nil {
			var snap snapshot
			if err := json.Unmarshal([]byte(data), &snap); err == nil && snap.Cart != nil {
				s.mu.Lock()
				if snap.Seq > s.applied[sessionID] {
					s.applied[sessionID] = snap.Seq
					s.snapshots[sessionID] = snap.Cart
				}
				if snap.Seq > s.issued[sessionID] {
					s.issued[sessionID] = snap.Seq
				}
				c := s.snapshots[sessionID]
				s.mu.Unlock()
				return c
			}
		} else if err != redis.Nil && s.logger != nil {
			s.logger.WithError(err).Warn("cart snapshot read from redis failed")
		}
	}

	return &Cart{Items: []CartLine{}}
}

// Clear drops all state for the session. Called on logout and on explicit
// cart clear.
func (s *Store) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.issued, sessionID)
	delete(s.applied, sessionID)
	delete(s.snapshots, sessionID)
	s.mu.Unlock()

	if s.redis != nil {
		if err := s.redis.Del(ctx, s.key(sessionID)).Err(); err != nil && s.logger != nil {
			s.logger.WithError(err).Warn("cart snapshot delete from redis failed")
		}
	}
}

func (s *Store) persist(ctx context.Context, sessionID string, seq uint64, c *Cart) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(snapshot{Seq: seq, Cart: c, AppliedAt: time.Now().UTC()})
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Warn("cart snapshot marshal failed")
		}
		return
	}

	if err := s.redis.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil && s.logger != nil {
		s.logger.WithError(err).Warn("cart snapshot write to redis failed")
	}
}

func (s *Store) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

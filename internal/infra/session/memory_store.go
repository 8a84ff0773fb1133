// Package session provides the server-side store backing admin cookie sessions.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"fitlife/internal/domain/entity"
	"fitlife/internal/domain/service"
	"fitlife/internal/errors"

	"go.uber.org/fx"
)

const (
	// sessionIDByteLength is the entropy of a session ID before hex encoding.
	sessionIDByteLength = 32

	janitorInterval = time.Minute
)

// memoryStore keeps admin sessions in process memory. The admin panel runs
// on a single instance, so no external store is involved; restarting the
// process logs every admin out, which is acceptable for this surface.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.AdminSession
	ttl      time.Duration

	now func() time.Time
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// NewMemoryStore constructs the in-memory session store and registers a
// background janitor that evicts expired sessions.
func NewMemoryStore(params Params, ttl time.Duration) service.SessionStore {
	store := &memoryStore{
		sessions: make(map[string]*entity.AdminSession),
		ttl:      ttl,
		now:      time.Now,
	}

	janitorCtx, cancelJanitor := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.janitor(janitorCtx, params.Logger)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelJanitor()

			return nil
		},
	})

	return store
}

// Create stores the session under a freshly generated ID and returns it.
// The stored copy is detached from the caller's pointer so later mutations
// on either side stay invisible to the other.
func (s *memoryStore) Create(_ context.Context, sess *entity.AdminSession) (string, error) {
	id, err := generateSessionID()
	if err != nil {
		return "", err
	}

	stored := *sess
	stored.ID = id
	stored.ExpiresAt = s.now().Add(s.ttl)

	s.mu.Lock()
	s.sessions[id] = &stored
	s.mu.Unlock()

	return id, nil
}

// Get retrieves a live session. Expired sessions are treated as absent and
// removed on sight rather than waiting for the janitor.
func (s *memoryStore) Get(_ context.Context, id string) (*entity.AdminSession, error) {
	s.mu.RLock()
	stored, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, service.ErrSessionNotFound
	}
	if s.now().After(stored.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()

		return nil, service.ErrSessionNotFound
	}

	copied := *stored

	return &copied, nil
}

// Destroy removes a session. Unknown IDs are a no-op, which lets callers
// destroy whatever ID a client presented without a prior lookup.
func (s *memoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) janitor(ctx context.Context, logger *slog.Logger) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted := s.evictExpired()
			if evicted > 0 && logger != nil {
				logger.LogAttrs(ctx, slog.LevelDebug, "Evicted expired admin sessions",
					slog.Int("count", evicted),
				)
			}
		}
	}
}

func (s *memoryStore) evictExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			evicted++
		}
	}

	return evicted
}

func generateSessionID() (string, error) {
	buf := make([]byte, sessionIDByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read session id entropy")
	}

	return hex.EncodeToString(buf), nil
}

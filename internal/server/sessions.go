package server

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"attnview/internal/logging"
	"attnview/internal/playback"
	"attnview/internal/review"
)

// sessionStore keeps one review.Session per browser. Entries expire after
// the configured idle period and are closed on eviction.
type sessionStore struct {
	cache   *cache.Cache
	library *review.Library
	initial playback.State
	clock   playback.Clock
	logger  *slog.Logger
}

func newSessionStore(library *review.Library, initial playback.State, idle time.Duration, clock playback.Clock, logger *slog.Logger) *sessionStore {
	if idle <= 0 {
		idle = time.Hour
	}
	cleanup := idle / 6
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	store := &sessionStore{
		cache:   cache.New(idle, cleanup),
		library: library,
		initial: initial,
		clock:   clock,
		logger:  logger,
	}
	store.cache.OnEvicted(func(id string, value any) {
		if session, ok := value.(*review.Session); ok {
			session.Close()
			store.logger.Debug("session evicted", logging.SessionID(id))
		}
	})
	return store
}

// get returns the session for id and refreshes its expiry. An expired
// entry is deleted on the spot so its session closes before the janitor runs.
func (s *sessionStore) get(id string) (*review.Session, bool) {
	if id == "" {
		return nil, false
	}
	value, found := s.cache.Get(id)
	if !found {
		s.cache.Delete(id)
		return nil, false
	}
	session := value.(*review.Session)
	s.cache.Set(id, session, cache.DefaultExpiration)
	return session, true
}

func (s *sessionStore) create() *review.Session {
	id := uuid.NewString()
	ctrl := review.NewController(s.library, s.initial, s.logger)
	session := review.NewSession(id, ctrl, s.clock, s.logger)
	s.cache.Set(id, session, cache.DefaultExpiration)
	s.logger.Info("session created",
		logging.SessionID(id),
		logging.Task(s.initial.Task.String()),
	)
	return session
}

func (s *sessionStore) count() int {
	return s.cache.ItemCount()
}

// closeAll drops every session; eviction closes them.
func (s *sessionStore) closeAll() {
	for id := range s.cache.Items() {
		s.cache.Delete(id)
	}
}

package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-search-console/internal/infrastructure/timeutil"
)

// DefaultSessionIdleTTL is how long an unused session is kept.
const DefaultSessionIdleTTL = 30 * time.Minute

// SessionStoreConfig contains configuration options for the session store.
type SessionStoreConfig struct {
	// IdleTTL is how long a session survives without being touched
	IdleTTL time.Duration

	// Clock provides the current time (default: real clock)
	Clock timeutil.Clock

	// Logger receives session lifecycle events
	Logger zerolog.Logger

	// OnSizeChange, if set, is called with the number of live sessions
	// whenever it changes
	OnSizeChange func(n int)
}

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// SessionStore keeps the in-memory sessions of the console. Sessions are
// never persisted; an idle session is dropped after IdleTTL.
type SessionStore struct {
	uc           FlightSearchUseCase
	idleTTL      time.Duration
	clock        timeutil.Clock
	log          zerolog.Logger
	onSizeChange func(n int)

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewSessionStore creates an empty store whose sessions search through uc.
func NewSessionStore(uc FlightSearchUseCase, cfg SessionStoreConfig) *SessionStore {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultSessionIdleTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}

	return &SessionStore{
		uc:           uc,
		idleTTL:      cfg.IdleTTL,
		clock:        cfg.Clock,
		log:          cfg.Logger,
		onSizeChange: cfg.OnSizeChange,
		sessions:     make(map[string]*sessionEntry),
	}
}

// Get returns the live session with the given id and marks it as used.
// Expired sessions are removed and reported as missing.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	entry, ok := st.sessions[id]
	if !ok {
		return nil, false
	}

	now := st.clock.Now()
	if st.expired(entry, now) {
		st.remove(id)
		return nil, false
	}

	entry.lastSeen = now
	return entry.session, true
}

// GetOrCreate returns the session with the given id, or a new session with
// a fresh id when it does not exist. The boolean reports whether a session
// was created.
func (st *SessionStore) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}

	s := NewSession(uuid.NewString(), st.uc, st.log)

	st.mu.Lock()
	st.sessions[s.ID()] = &sessionEntry{session: s, lastSeen: st.clock.Now()}
	n := len(st.sessions)
	st.mu.Unlock()

	st.log.Debug().Str("session_id", s.ID()).Msg("Session created")
	st.notify(n)
	return s, true
}

// Sweep removes every idle session that has no search outstanding and
// returns how many were removed.
func (st *SessionStore) Sweep() int {
	st.mu.Lock()
	now := st.clock.Now()
	removed := 0
	for id, entry := range st.sessions {
		if st.expired(entry, now) {
			delete(st.sessions, id)
			removed++
		}
	}
	n := len(st.sessions)
	st.mu.Unlock()

	if removed > 0 {
		st.log.Debug().Int("removed", removed).Int("remaining", n).Msg("Expired sessions swept")
		st.notify(n)
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (st *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}

// Len returns the number of sessions currently held, expired or not.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) expired(entry *sessionEntry, now time.Time) bool {
	if now.Sub(entry.lastSeen) < st.idleTTL {
		return false
	}
	return !entry.session.State().Loading
}

// remove deletes a session; the caller holds st.mu.
func (st *SessionStore) remove(id string) {
	delete(st.sessions, id)
	st.notify(len(st.sessions))
}

func (st *SessionStore) notify(n int) {
	if st.onSizeChange != nil {
		st.onSizeChange(n)
	}
}

package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-search-console/internal/domain"
)

// Session holds the search state of one console user.
//
// State changes go through Apply, which runs a pure transition under the
// session lock. At most one search per session is outstanding; a second
// Search call while one is running returns domain.ErrSearchInProgress.
type Session struct {
	id     string
	search FlightSearchUseCase
	log    zerolog.Logger

	mu    sync.Mutex
	state domain.SearchState
}

// NewSession creates a session with a fresh state.
func NewSession(id string, uc FlightSearchUseCase, log zerolog.Logger) *Session {
	return &Session{
		id:     id,
		search: uc,
		log:    log.With().Str("session_id", id).Logger(),
		state:  domain.NewSearchState(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Variant reports which record shape and filters the session works with.
func (s *Session) Variant() domain.Variant {
	return s.search.Variant()
}

// State returns a snapshot of the current state.
func (s *Session) State() domain.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Apply replaces the state with transition(current) and returns the result.
func (s *Session) Apply(transition func(domain.SearchState) domain.SearchState) domain.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = transition(s.state)
	return s.state.Clone()
}

// Search runs one search with the current form.
//
// The loading flag is set for the duration of the call and always cleared
// afterwards. On failure the error is logged, the previous results are kept
// and the error is returned. Input the use case rejects before calling the
// client is returned without being recorded as LastError. Once started, the search is not cancelled when
// ctx is; it runs until the client returns.
func (s *Session) Search(ctx context.Context) (domain.SearchState, error) {
	s.mu.Lock()
	if s.state.Loading {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot, domain.ErrSearchInProgress
	}
	s.state = s.state.WithSearchStarted()
	form := s.state.Form
	s.mu.Unlock()

	flights, err := s.runSearch(ctx, form)
	return s.finish(flights, err)
}

// runSearch calls the use case with panic recovery so a misbehaving client
// cannot leave the session stuck in loading.
func (s *Session) runSearch(ctx context.Context, form domain.SearchForm) (flights []domain.DisplayFlight, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("search panic: %v", r)
		}
	}()
	return s.search.Search(context.WithoutCancel(ctx), form)
}

func (s *Session) finish(flights []domain.DisplayFlight, err error) (domain.SearchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.IsInvalidRequest(err) {
		s.log.Warn().Err(err).Msg("Flight search rejected")
		s.state = s.state.WithSearchRejected()
		return s.state.Clone(), err
	}
	if err != nil {
		s.log.Error().
			Err(err).
			Str("error_kind", string(domain.KindOf(err))).
			Msg("Flight search failed")
		s.state = s.state.WithSearchFailed(err)
		return s.state.Clone(), err
	}

	s.log.Debug().Int("results", len(flights)).Msg("Flight search completed")
	s.state = s.state.WithSearchSucceeded(flights)
	return s.state.Clone(), nil
}

// Package session ties the state store to the remote per-user record for
// the lifetime of a running session.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/state"
)

// DefaultDebounce is the delay remote saves are coalesced over, so that
// rapid successive edits become a single remote write.
const DefaultDebounce = 500 * time.Millisecond

// Remote is the per-user record store the session syncs against.
type Remote interface {
	Load(ctx context.Context, userID string) models.AppState
	Save(ctx context.Context, userID string, s models.AppState)
}

// Session performs the remote sync lifecycle: on login the remote snapshot
// replaces the in-memory one, afterwards every change schedules a
// debounced remote save. A new change cancels and reschedules the pending
// save instead of queueing, last write wins.
type Session struct {
	store  *state.Store
	remote Remote
	delay  time.Duration
	unsub  func()

	mu      sync.Mutex
	userID  string
	timer   *time.Timer
	pending models.AppState
	closed  bool
}

// New returns a Session subscribed to the store. A non-positive delay
// falls back to DefaultDebounce.
func New(store *state.Store, remote Remote, delay time.Duration) *Session {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	s := &Session{
		store:  store,
		remote: remote,
		delay:  delay,
	}
	s.unsub = store.Subscribe(s.onChange)

	return s
}

// Login loads the user's remote snapshot and replaces the in-memory one
// wholesale. The replace is dispatched before Login returns, so every
// later local action applies on top of the loaded state.
//
// One guard softens the replace: an empty remote record does not clobber
// local data. In that case the local snapshot is kept and scheduled for
// remote save instead.
func (s *Session) Login(ctx context.Context, userID string) models.AppState {
	remoteState := s.remote.Load(ctx, userID)

	s.mu.Lock()
	s.userID = userID
	s.cancelLocked()
	s.mu.Unlock()

	local := s.store.Snapshot()
	if remoteState.IsEmpty() && !local.IsEmpty() {
		log.Info().Str("user", userID).Msg("remote state is empty, keeping local state")
		s.onChange(local)
		return local
	}

	return s.store.Dispatch(state.ReplaceState{Next: remoteState})
}

// Logout detaches the user. The pending remote save, if any, is cancelled.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = ""
	s.cancelLocked()
}

// UserID returns the logged-in user id, or "" when logged out.
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userID
}

// Flush writes the pending snapshot immediately, if a save is scheduled.
func (s *Session) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.timer == nil || !s.timer.Stop() {
		s.mu.Unlock()
		return
	}
	userID := s.userID
	snapshot := s.pending
	s.timer = nil
	s.mu.Unlock()

	s.remote.Save(ctx, userID, snapshot)
}

// Close unsubscribes from the store and cancels the pending save. An
// in-flight remote write is not interrupted.
func (s *Session) Close() {
	s.unsub()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cancelLocked()
}

func (s *Session) onChange(snapshot models.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.userID == "" {
		return
	}

	userID := s.userID
	s.pending = snapshot
	s.cancelLocked()
	s.timer = time.AfterFunc(s.delay, func() {
		s.remote.Save(context.Background(), userID, snapshot)
	})
}

func (s *Session) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

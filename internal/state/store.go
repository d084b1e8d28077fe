package state

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spendbook/backend/internal/models"
)

// LocalStore persists snapshots locally after every dispatch.
type LocalStore interface {
	Save(models.AppState) error
}

// Subscriber is called with the new snapshot after every dispatch.
type Subscriber func(models.AppState)

// Store owns the live snapshot for a running session. Dispatch applies an
// action, persists the result to the local store and notifies subscribers.
// Dispatches are serialized; the snapshot is only ever replaced wholesale,
// never modified in place.
type Store struct {
	mu       sync.Mutex
	reducer  Reducer
	snapshot models.AppState
	local    LocalStore
	subs     map[int]Subscriber
	nextSub  int
}

// NewStore returns a Store holding the initial snapshot.
// The local store may be nil, for example in tests.
func NewStore(initial models.AppState, reducer Reducer, local LocalStore) *Store {
	initial.Normalize()

	return &Store{
		reducer:  reducer,
		snapshot: initial,
		local:    local,
		subs:     map[int]Subscriber{},
	}
}

// Snapshot returns the current snapshot.
func (st *Store) Snapshot() models.AppState {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.snapshot
}

// Dispatch applies an action and returns the new snapshot.
//
// The save and the subscriber notifications run inside the dispatch
// lock: concurrent dispatches must not persist or deliver snapshots out
// of order, or the local file and a pending remote save end up one edit
// behind.
//
// Local persistence is best effort: a failing save is logged and the
// in-memory snapshot stays the source of truth for the session.
func (st *Store) Dispatch(action Action) models.AppState {
	st.mu.Lock()
	defer st.mu.Unlock()

	next := st.reducer.Apply(st.snapshot, action)
	st.snapshot = next

	if st.local != nil {
		if err := st.local.Save(next); err != nil {
			log.Error().Err(err).Msg("saving state locally failed")
		}
	}

	for _, sub := range st.subs {
		sub(next)
	}

	return next
}

// Subscribe registers a change notification. Subscribers are called with
// the dispatch lock held and must not dispatch themselves. The returned
// function removes the subscription.
func (st *Store) Subscribe(sub Subscriber) func() {
	st.mu.Lock()
	defer st.mu.Unlock()

	id := st.nextSub
	st.nextSub++
	st.subs[id] = sub

	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		delete(st.subs, id)
	}
}

// Package store holds a screen's view state as a sequence of immutable
// snapshots. One writer replaces the snapshot per event and every observer
// sees the complete new value.
package store

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/saravenpi/stencil/internal/logger"
)

// Container is the read side shared by every screen's state holder.
type Container[S any] interface {
	State() S
	Revision() uint64
	Subscribe(fn func(S)) (unsubscribe func())
	Watch() (<-chan S, func())
}

type Store[S any] struct {
	name     string
	id       string
	log      *slog.Logger
	current  atomic.Pointer[S]
	revision atomic.Uint64

	// mu serializes writers and guards subs, pending and dispatching.
	mu     sync.Mutex
	subs   map[uint64]func(S)
	nextID uint64

	// pending holds published snapshots not yet delivered, oldest first.
	// Only the goroutine that set dispatching drains it.
	pending     []S
	dispatching bool
}

var _ Container[struct{}] = (*Store[struct{}])(nil)

// New creates a store seeded with initial. The name shows up in logs.
func New[S any](name string, initial S) *Store[S] {
	id := uuid.NewString()
	s := &Store[S]{
		name: name,
		id:   id,
		log:  logger.WithSession(name, id),
		subs: make(map[uint64]func(S)),
	}
	s.current.Store(&initial)
	s.log.Debug("store created")
	return s
}

// ID identifies this store instance in logs.
func (s *Store[S]) ID() string { return s.id }

func (s *Store[S]) Name() string { return s.name }

// State returns the current snapshot. It never blocks.
func (s *Store[S]) State() S {
	return *s.current.Load()
}

// Revision counts published snapshots; the initial state is revision 0.
func (s *Store[S]) Revision() uint64 {
	return s.revision.Load()
}

// Update replaces the snapshot with fn(current) and notifies subscribers.
// fn must not mutate its argument: slices and pointers in the old snapshot
// may still be held by readers.
//
// Subscribers see snapshots in revision order. When another Update is
// already notifying (a concurrent writer, or a subscriber calling Update),
// the new snapshot is queued and delivered by that call before it returns.
func (s *Store[S]) Update(fn func(S) S) S {
	s.mu.Lock()
	next := fn(*s.current.Load())
	s.current.Store(&next)
	rev := s.revision.Add(1)
	s.pending = append(s.pending, next)
	if s.dispatching {
		s.mu.Unlock()
		s.log.Debug("state queued", "revision", rev)
		return next
	}
	s.dispatching = true
	s.mu.Unlock()

	s.log.Debug("state published", "revision", rev)
	s.dispatch()
	return next
}

// dispatch delivers queued snapshots until none are left. Callbacks run
// without mu held so they may call State or Update.
func (s *Store[S]) dispatch() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.dispatching = false
			s.mu.Unlock()
			return
		}
		state := s.pending[0]
		var zero S
		s.pending[0] = zero
		s.pending = s.pending[1:]
		subs := make([]func(S), 0, len(s.subs))
		for _, sub := range s.subs {
			subs = append(subs, sub)
		}
		s.mu.Unlock()

		for _, sub := range subs {
			sub(state)
		}
	}
}

// Subscribe registers fn to be called with every new snapshot. Callbacks run
// on a writer's goroutine after the snapshot is visible through State, one
// snapshot at a time and in revision order.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Watch returns a channel carrying the latest snapshot. The channel holds at
// most one value; a snapshot nobody read yet is replaced by the newer one.
// The returned func stops delivery and closes the channel.
func (s *Store[S]) Watch() (<-chan S, func()) {
	ch := make(chan S, 1)
	var (
		mu     sync.Mutex
		closed bool
	)
	unsubscribe := s.Subscribe(func(state S) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case <-ch:
		default:
		}
		ch <- state
	})
	stop := func() {
		unsubscribe()
		mu.Lock()
		defer mu.Unlock()
		if !closed {
			closed = true
			close(ch)
		}
	}
	return ch, stop
}

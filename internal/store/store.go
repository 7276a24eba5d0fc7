// Package store is the single owner of the in-memory movie, user, rental and
// rating collections. Views read copies and mutate only through Store
// operations, which talk to the backend via the gateway.
//
// Mutations are not serialized against each other. Two concurrent writes to
// the same id race and the last backend response to arrive wins.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/data/gateway"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type LoadState string

const (
	StateUninitialized LoadState = "uninitialized"
	StateLoading       LoadState = "loading"
	StateReady         LoadState = "ready"
	StateFailed        LoadState = "failed"
)

// RollbackPolicy decides what a failed delete puts back.
type RollbackPolicy string

const (
	// RollbackPlaceholder re-adds a bare {id} record and leaves cascaded
	// dependents removed.
	RollbackPlaceholder RollbackPolicy = "placeholder"
	// RollbackSnapshot restores the removed record and its cascaded
	// dependents at their previous positions.
	RollbackSnapshot RollbackPolicy = "snapshot"
)

func ParseRollbackPolicy(s string) (RollbackPolicy, error) {
	switch p := RollbackPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return RollbackPlaceholder, nil
	case RollbackPlaceholder, RollbackSnapshot:
		return p, nil
	default:
		return "", fmt.Errorf("unknown rollback mode %q", s)
	}
}

type Options struct {
	Rollback RollbackPolicy
}

// Status is the aggregate load state shown to views.
type Status struct {
	Loading     bool                      `json:"loading"`
	State       LoadState                 `json:"state"`
	Error       string                    `json:"error,omitempty"`
	Collections map[entity.Kind]LoadState `json:"collections"`
	Failures    map[entity.Kind]string    `json:"failures,omitempty"`
}

// Snapshot is a consistent, detached copy of everything the store holds.
type Snapshot struct {
	Status  Status          `json:"status"`
	Movies  []entity.Movie  `json:"movies"`
	Users   []entity.User   `json:"users"`
	Rentals []entity.Rental `json:"rentals"`
	Ratings []entity.Rating `json:"ratings"`
}

type Store struct {
	gw       *gateway.Gateway
	log      *zap.Logger
	rollback RollbackPolicy

	mu       sync.RWMutex
	movies   []entity.Movie
	users    []entity.User
	rentals  []entity.Rental
	ratings  []entity.Rating
	states   map[entity.Kind]LoadState
	failures map[entity.Kind]error
	closed   bool

	initOnce sync.Once
	initDone *Future[Status]
	inflight sync.WaitGroup
}

func New(gw *gateway.Gateway, opts Options, log *zap.Logger) *Store {
	rollback := opts.Rollback
	if rollback == "" {
		rollback = RollbackPlaceholder
	}

	states := make(map[entity.Kind]LoadState, len(entity.Kinds))
	for _, k := range entity.Kinds {
		states[k] = StateUninitialized
	}

	return &Store{
		gw:       gw,
		log:      log.With(zap.String("store", "client")),
		rollback: rollback,
		movies:   []entity.Movie{},
		users:    []entity.User{},
		rentals:  []entity.Rental{},
		ratings:  []entity.Rating{},
		states:   states,
		failures: make(map[entity.Kind]error),
	}
}

// Init loads all four collections concurrently. It runs once; later calls
// return the same future. The future resolves when every load has settled,
// with the joined load errors if any failed. Collections that loaded are
// kept even when others failed.
func (s *Store) Init(ctx context.Context) *Future[Status] {
	s.initOnce.Do(func() {
		s.initDone = newFuture[Status]()

		s.mu.Lock()
		if s.closed {
			st := s.statusLocked()
			s.mu.Unlock()
			s.initDone.resolve(st, ErrClosed)
			return
		}
		for _, k := range entity.Kinds {
			s.states[k] = StateLoading
		}
		s.inflight.Add(1)
		s.mu.Unlock()

		s.log.Info("Loading collections")
		go func() {
			defer s.inflight.Done()
			err := s.load(ctx)
			s.initDone.resolve(s.Status(), err)
		}()
	})
	return s.initDone
}

func (s *Store) load(ctx context.Context) error {
	var (
		movies  []entity.Movie
		users   []entity.User
		rentals []entity.Rental
		ratings []entity.Rating
		errs    = make([]error, len(entity.Kinds))
	)

	var g errgroup.Group
	g.Go(func() (err error) { movies, err = s.gw.Movie.List(ctx); errs[0] = err; return err })
	g.Go(func() (err error) { users, err = s.gw.User.List(ctx); errs[1] = err; return err })
	g.Go(func() (err error) { rentals, err = s.gw.Rental.List(ctx); errs[2] = err; return err })
	g.Go(func() (err error) { ratings, err = s.gw.Rating.List(ctx); errs[3] = err; return err })
	if err := g.Wait(); err == nil {
		s.log.Info("Collections loaded",
			zap.Int("movies", len(movies)),
			zap.Int("users", len(users)),
			zap.Int("rentals", len(rentals)),
			zap.Int("ratings", len(ratings)),
		)
	}

	// Nothing becomes visible until every load has settled.
	s.mu.Lock()
	defer s.mu.Unlock()
	commit(s, entity.KindMovie, &s.movies, movies, errs[0])
	commit(s, entity.KindUser, &s.users, users, errs[1])
	commit(s, entity.KindRental, &s.rentals, rentals, errs[2])
	commit(s, entity.KindRating, &s.ratings, ratings, errs[3])

	joined := errors.Join(errs...)
	if joined != nil {
		s.log.Error("Failed to load data", zap.Error(joined))
	}
	return joined
}

// commit must be called with s.mu held.
func commit[T any](s *Store, kind entity.Kind, dst *[]T, items []T, err error) {
	if err != nil {
		s.states[kind] = StateFailed
		s.failures[kind] = err
		return
	}
	*dst = items
	s.states[kind] = StateReady
}

// Close stops accepting mutations and waits for in-flight ones to settle or
// for ctx to end.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("Store closed")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for in-flight operations: %w", ctx.Err())
	}
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusLocked()
}

func (s *Store) statusLocked() Status {
	st := Status{
		Collections: make(map[entity.Kind]LoadState, len(entity.Kinds)),
	}

	var loading, failed, uninitialized bool
	for _, k := range entity.Kinds {
		state := s.states[k]
		st.Collections[k] = state
		switch state {
		case StateLoading:
			loading = true
		case StateFailed:
			failed = true
			if st.Failures == nil {
				st.Failures = make(map[entity.Kind]string)
			}
			st.Failures[k] = s.failures[k].Error()
		case StateUninitialized:
			uninitialized = true
		}
	}

	switch {
	case loading:
		st.State, st.Loading = StateLoading, true
	case failed:
		st.State, st.Error = StateFailed, genericLoadError
	case uninitialized:
		st.State = StateUninitialized
	default:
		st.State = StateReady
	}
	return st
}

// State returns the load state of one collection.
func (s *Store) State(kind entity.Kind) LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[kind]
}

func (s *Store) Movies() []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.movies)
}

func (s *Store) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.users)
}

func (s *Store) Rentals() []entity.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.rentals)
}

func (s *Store) Ratings() []entity.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.ratings)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Status:  s.statusLocked(),
		Movies:  clone(s.movies),
		Users:   clone(s.users),
		Rentals: clone(s.rentals),
		Ratings: clone(s.ratings),
	}
}

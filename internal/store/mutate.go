package store

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/pkg/utils"

	"go.uber.org/zap"
)

// admit validates req (when non-nil) and registers one in-flight operation
// against kind. check, when set, runs under the write lock after the store
// accepted the operation and may veto it with field errors. On success the
// caller owns one inflight.Done.
func (s *Store) admit(kind entity.Kind, req any, check func() map[string]string) error {
	if req != nil {
		if fields := utils.ValidateStruct(req); fields != nil {
			return validationError(kind, fields)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	switch s.states[kind] {
	case StateUninitialized, StateLoading:
		return ErrNotLoaded
	}
	if check != nil {
		if fields := check(); len(fields) > 0 {
			return validationError(kind, fields)
		}
	}

	s.inflight.Add(1)
	return nil
}

func create[T entity.Record](
	ctx context.Context,
	s *Store,
	kind entity.Kind,
	items *[]T,
	req any,
	check func() map[string]string,
	call func(context.Context) (*T, error),
) *Future[T] {
	var zero T
	if err := s.admit(kind, req, check); err != nil {
		return resolved(zero, err)
	}

	f := newFuture[T]()
	go func() {
		defer s.inflight.Done()

		rec, err := call(context.WithoutCancel(ctx))
		if err != nil {
			s.log.Warn("Create failed", zap.String("resource", string(kind)), zap.Error(err))
			f.resolve(zero, err)
			return
		}

		s.mu.Lock()
		*items = appendItem(*items, *rec)
		s.mu.Unlock()

		s.log.Debug("Created", zap.String("resource", string(kind)), zap.Int64("id", (*rec).Key()))
		f.resolve(*rec, nil)
	}()
	return f
}

func update[T entity.Record](
	ctx context.Context,
	s *Store,
	kind entity.Kind,
	items *[]T,
	id int64,
	req any,
	check func() map[string]string,
	call func(context.Context) (*T, error),
) *Future[T] {
	var zero T
	if err := s.admit(kind, req, check); err != nil {
		return resolved(zero, err)
	}

	f := newFuture[T]()
	go func() {
		defer s.inflight.Done()

		rec, err := call(context.WithoutCancel(ctx))
		if err != nil {
			s.log.Warn("Update failed",
				zap.String("resource", string(kind)),
				zap.Int64("id", id),
				zap.Error(err),
			)
			f.resolve(zero, err)
			return
		}

		s.mu.Lock()
		next, replaced := replaceOrAppend(*items, *rec)
		*items = next
		s.mu.Unlock()

		if !replaced {
			s.log.Debug("Updated record was not mirrored, appended",
				zap.String("resource", string(kind)),
				zap.Int64("id", (*rec).Key()),
			)
		}
		f.resolve(*rec, nil)
	}()
	return f
}

// cascadeFunc removes dependents of a deleted record and returns how to put
// them back. Both run with s.mu held.
type cascadeFunc func(id int64) (undo func())

func remove[T entity.Record](
	ctx context.Context,
	s *Store,
	kind entity.Kind,
	items *[]T,
	id int64,
	placeholder func(id int64) T,
	cascade cascadeFunc,
	call func(context.Context, int64) error,
) *Future[struct{}] {
	if err := s.admit(kind, nil, nil); err != nil {
		return resolved(struct{}{}, err)
	}

	// Optimistic removal is visible before the request goes out.
	s.mu.Lock()
	next, prior, at, found := removeByID(*items, id)
	*items = next
	var undo func()
	if cascade != nil {
		undo = cascade(id)
	}
	s.mu.Unlock()

	f := newFuture[struct{}]()
	go func() {
		defer s.inflight.Done()

		err := call(context.WithoutCancel(ctx), id)
		if err == nil {
			f.resolve(struct{}{}, nil)
			return
		}

		s.mu.Lock()
		switch {
		case s.rollback == RollbackSnapshot:
			if found {
				*items = insertAt(*items, at, prior)
			}
			if undo != nil {
				undo()
			}
		case found:
			*items = insertAt(*items, len(*items), placeholder(id))
		}
		s.mu.Unlock()

		s.log.Warn("Delete failed, rolled back",
			zap.String("resource", string(kind)),
			zap.Int64("id", id),
			zap.String("rollback", string(s.rollback)),
			zap.Error(err),
		)
		f.resolve(struct{}{}, err)
	}()
	return f
}

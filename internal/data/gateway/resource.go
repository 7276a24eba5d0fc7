package gateway

import (
	"context"
	"net/http"
	"strconv"

	"movie-rental/internal/data/entity"
)

// resource maps the four CRUD intents for one kind onto its endpoint root.
type resource[T entity.Record] struct {
	kind   entity.Kind
	client *client
}

func (r resource[T]) list(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, []string{r.kind.Path()}, nil, &items); err != nil {
		return nil, &FetchError{Resource: r.kind, Cause: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r resource[T]) create(ctx context.Context, payload any) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPost, []string{r.kind.Path()}, payload, &item); err != nil {
		return nil, &WriteError{Resource: r.kind, Operation: OpCreate, Cause: err}
	}
	if item.Key() == 0 {
		return nil, &WriteError{Resource: r.kind, Operation: OpCreate, Cause: ErrMissingID}
	}
	return &item, nil
}

func (r resource[T]) update(ctx context.Context, id int64, payload any) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPatch, r.itemPath(id), payload, &item); err != nil {
		return nil, &WriteError{Resource: r.kind, Operation: OpUpdate, ID: id, Cause: err}
	}
	if item.Key() == 0 {
		return nil, &WriteError{Resource: r.kind, Operation: OpUpdate, ID: id, Cause: ErrMissingID}
	}
	return &item, nil
}

func (r resource[T]) remove(ctx context.Context, id int64) error {
	if err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil); err != nil {
		return &WriteError{Resource: r.kind, Operation: OpDelete, ID: id, Cause: err}
	}
	return nil
}

func (r resource[T]) itemPath(id int64) []string {
	return []string{r.kind.Path(), strconv.FormatInt(id, 10)}
}

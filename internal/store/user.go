package store

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
)

func (s *Store) CreateUser(ctx context.Context, req *request.UserRequest) *Future[entity.User] {
	return create(ctx, s, entity.KindUser, &s.users, req, nil,
		func(ctx context.Context) (*entity.User, error) {
			return s.gw.User.Create(ctx, req)
		})
}

func (s *Store) UpdateUser(ctx context.Context, id int64, req *request.UserUpdateRequest) *Future[entity.User] {
	return update(ctx, s, entity.KindUser, &s.users, id, req, nil,
		func(ctx context.Context) (*entity.User, error) {
			return s.gw.User.Update(ctx, id, req)
		})
}

func (s *Store) DeleteUser(ctx context.Context, id int64) *Future[struct{}] {
	return remove(ctx, s, entity.KindUser, &s.users, id,
		func(id int64) entity.User { return entity.User{ID: id} },
		nil,
		s.gw.User.Delete)
}

package store

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
)

func (s *Store) CreateRating(ctx context.Context, req *request.RatingRequest) *Future[entity.Rating] {
	return create(ctx, s, entity.KindRating, &s.ratings, req, nil,
		func(ctx context.Context) (*entity.Rating, error) {
			return s.gw.Rating.Create(ctx, req)
		})
}

func (s *Store) UpdateRating(ctx context.Context, id int64, req *request.RatingUpdateRequest) *Future[entity.Rating] {
	return update(ctx, s, entity.KindRating, &s.ratings, id, req, nil,
		func(ctx context.Context) (*entity.Rating, error) {
			return s.gw.Rating.Update(ctx, id, req)
		})
}

func (s *Store) DeleteRating(ctx context.Context, id int64) *Future[struct{}] {
	return remove(ctx, s, entity.KindRating, &s.ratings, id,
		func(id int64) entity.Rating { return entity.Rating{ID: id} },
		nil,
		s.gw.Rating.Delete)
}

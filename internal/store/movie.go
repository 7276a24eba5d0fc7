package store

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
)

func (s *Store) CreateMovie(ctx context.Context, req *request.MovieRequest) *Future[entity.Movie] {
	return create(ctx, s, entity.KindMovie, &s.movies, req, nil,
		func(ctx context.Context) (*entity.Movie, error) {
			return s.gw.Movie.Create(ctx, req)
		})
}

func (s *Store) UpdateMovie(ctx context.Context, id int64, req *request.MovieUpdateRequest) *Future[entity.Movie] {
	return update(ctx, s, entity.KindMovie, &s.movies, id, req, nil,
		func(ctx context.Context) (*entity.Movie, error) {
			return s.gw.Movie.Update(ctx, id, req)
		})
}

// DeleteMovie also drops every rental of the movie from the mirror in the
// same step.
func (s *Store) DeleteMovie(ctx context.Context, id int64) *Future[struct{}] {
	return remove(ctx, s, entity.KindMovie, &s.movies, id,
		func(id int64) entity.Movie { return entity.Movie{ID: id} },
		s.dropRentalsOfMovie,
		s.gw.Movie.Delete)
}

// dropRentalsOfMovie must be called with s.mu held.
func (s *Store) dropRentalsOfMovie(movieID int64) func() {
	type dropped struct {
		at     int
		rental entity.Rental
	}

	var gone []dropped
	kept := make([]entity.Rental, 0, len(s.rentals))
	for i, r := range s.rentals {
		if r.MovieID == movieID {
			gone = append(gone, dropped{at: i, rental: r})
			continue
		}
		kept = append(kept, r)
	}
	if len(gone) == 0 {
		return nil
	}
	s.rentals = kept

	return func() {
		for _, d := range gone {
			s.rentals = insertAt(s.rentals, d.at, d.rental)
		}
	}
}

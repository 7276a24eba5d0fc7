package store

import (
	"context"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
)

const msgAlreadyRented = "User is already renting this movie"

func (s *Store) CreateRental(ctx context.Context, req *request.RentalRequest) *Future[entity.Rental] {
	check := func() map[string]string {
		return s.checkRentalPair(0, req.UserID, req.MovieID)
	}
	return create(ctx, s, entity.KindRental, &s.rentals, req, check,
		func(ctx context.Context) (*entity.Rental, error) {
			return s.gw.Rental.Create(ctx, req)
		})
}

func (s *Store) UpdateRental(ctx context.Context, id int64, req *request.RentalUpdateRequest) *Future[entity.Rental] {
	check := func() map[string]string {
		if req.UserID == nil && req.MovieID == nil {
			return nil
		}
		i := indexOf(s.rentals, id)
		if i < 0 {
			return nil
		}
		userID, movieID := s.rentals[i].UserID, s.rentals[i].MovieID
		if req.UserID != nil {
			userID = *req.UserID
		}
		if req.MovieID != nil {
			movieID = *req.MovieID
		}
		return s.checkRentalPair(id, userID, movieID)
	}
	return update(ctx, s, entity.KindRental, &s.rentals, id, req, check,
		func(ctx context.Context) (*entity.Rental, error) {
			return s.gw.Rental.Update(ctx, id, req)
		})
}

func (s *Store) DeleteRental(ctx context.Context, id int64) *Future[struct{}] {
	return remove(ctx, s, entity.KindRental, &s.rentals, id,
		func(id int64) entity.Rental { return entity.Rental{ID: id} },
		nil,
		s.gw.Rental.Delete)
}

// checkRentalPair rejects a second rental of the same movie by the same user.
// self is the rental being edited, zero for a new one. Must be called with
// s.mu held.
func (s *Store) checkRentalPair(self, userID, movieID int64) map[string]string {
	for _, r := range s.rentals {
		if r.ID != self && r.UserID == userID && r.MovieID == movieID {
			return map[string]string{"movie_id": msgAlreadyRented}
		}
	}
	return nil
}

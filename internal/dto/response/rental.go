package response

import "movie-rental/internal/data/entity"

type RentalResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Username   string `json:"username,omitempty"`
	MovieID    int64  `json:"movie_id"`
	MovieTitle string `json:"movie_title,omitempty"`
	DueDate    string `json:"due_date"`
}

type UserRentalsResponse struct {
	User    entity.User      `json:"user"`
	Rentals []RentalResponse `json:"rentals"`
}

type RentedMoviesResponse struct {
	UserID   int64   `json:"user_id"`
	MovieIDs []int64 `json:"movie_ids"`
}

// Helper converter
func RentalToResponse(rental entity.Rental, username, movieTitle string) RentalResponse {
	return RentalResponse{
		ID:         rental.ID,
		UserID:     rental.UserID,
		Username:   username,
		MovieID:    rental.MovieID,
		MovieTitle: movieTitle,
		DueDate:    rental.DueDate,
	}
}

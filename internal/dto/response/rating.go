package response

import "movie-rental/internal/data/entity"

type RatingResponse struct {
	ID         int64  `json:"id"`
	MovieID    int64  `json:"movie_id"`
	MovieTitle string `json:"movie_title,omitempty"`
	UserID     int64  `json:"user_id"`
	Username   string `json:"username,omitempty"`
	Rating     int    `json:"rating"`
	Review     string `json:"review"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Helper converter
func RatingToResponse(rating entity.Rating, username, movieTitle string) RatingResponse {
	return RatingResponse{
		ID:         rating.ID,
		MovieID:    rating.MovieID,
		MovieTitle: movieTitle,
		UserID:     rating.UserID,
		Username:   username,
		Rating:     rating.Rating,
		Review:     rating.Review,
		CreatedAt:  rating.CreatedAt,
	}
}

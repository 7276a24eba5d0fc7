package response

import "movie-rental/internal/data/entity"

type MovieResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Genre         string  `json:"genre"`
	ReleaseYear   int     `json:"release_year"`
	Image         string  `json:"image"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

type MovieRatingStats struct {
	MovieID       int64   `json:"movie_id"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

// Helper converter
func MovieToResponse(movie entity.Movie, stats MovieRatingStats) MovieResponse {
	return MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Genre:         movie.Genre,
		ReleaseYear:   movie.ReleaseYear,
		Image:         movie.Image,
		AverageRating: stats.AverageRating,
		RatingCount:   stats.RatingCount,
	}
}

package wire

import (
	"movie-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)          // ?sort=title|genre|release_year
		r.Post("/", movieHandler.CreateMovie)       // POST /api/movies
		r.Patch("/{id}", movieHandler.UpdateMovie)  // PATCH /api/movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // also drops the movie's rentals
		r.Get("/{id}/rating-stats", movieHandler.GetMovieRatingStats)
	})
}

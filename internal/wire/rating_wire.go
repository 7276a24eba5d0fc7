package wire

import (
	"movie-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler) {
	r.Route("/api/ratings", func(r chi.Router) {
		r.Get("/", ratingHandler.GetRatings)
		r.Post("/", ratingHandler.CreateRating)
		r.Get("/{id}", ratingHandler.GetRatingByID)
		r.Patch("/{id}", ratingHandler.UpdateRating)
		r.Delete("/{id}", ratingHandler.DeleteRating)
	})
}

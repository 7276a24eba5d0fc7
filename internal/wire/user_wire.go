package wire

import (
	"movie-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.GetUsers)
		r.Post("/", userHandler.CreateUser)
		r.Patch("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)

		// GET /api/users/{id}/rented-movies - ids of movies the user already rents
		r.Get("/{id}/rented-movies", userHandler.GetRentedMovies)
	})
}

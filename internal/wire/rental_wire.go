package wire

import (
	"movie-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRental(r chi.Router, rentalHandler *adaptor.RentalHandler) {
	r.Route("/api/rentals", func(r chi.Router) {
		r.Get("/", rentalHandler.GetRentals) // ?sort=user|movie|due_date
		r.Post("/", rentalHandler.CreateRental)
		r.Get("/by-user", rentalHandler.GetRentalsByUser)
		r.Patch("/{id}", rentalHandler.UpdateRental)
		r.Delete("/{id}", rentalHandler.DeleteRental)
	})
}

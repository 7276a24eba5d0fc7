package adaptor

import (
	"movie-rental/internal/store"

	"go.uber.org/zap"
)

type Handler struct {
	Status *StatusHandler
	Movie  *MovieHandler
	User   *UserHandler
	Rental *RentalHandler
	Rating *RatingHandler
}

func NewHandler(st *store.Store, log *zap.Logger) *Handler {
	return &Handler{
		Status: NewStatusHandler(st, log),
		Movie:  NewMovieHandler(st, log),
		User:   NewUserHandler(st, log),
		Rental: NewRentalHandler(st, log),
		Rating: NewRatingHandler(st, log),
	}
}

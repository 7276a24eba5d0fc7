// Package gateway translates CRUD intents into single HTTP requests against
// the movie-rental backend. It holds no state beyond its HTTP client.
package gateway

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Gateway struct {
	Movie  MovieGateway
	User   UserGateway
	Rental RentalGateway
	Rating RatingGateway
}

type Options struct {
	BaseURL   string
	Timeout   time.Duration // 0 means no timeout
	RateLimit float64       // requests per second, 0 means unlimited
	RateBurst int
	UserAgent string

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

func NewGateway(opts Options, log *zap.Logger) (*Gateway, error) {
	c, err := newClient(opts, log.With(zap.String("gateway", "backend")))
	if err != nil {
		return nil, err
	}

	return &Gateway{
		Movie:  newMovieGateway(c),
		User:   newUserGateway(c),
		Rental: newRentalGateway(c),
		Rating: newRatingGateway(c),
	}, nil
}

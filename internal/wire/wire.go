// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-rental/internal/adaptor"
	"movie-rental/internal/store"
	"movie-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds handlers over the store and mounts them on a router
func Wiring(st *store.Store, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(st, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.Get("/api/status", handler.Status.GetStatus)
	wireMovie(r, handler.Movie)
	wireUser(r, handler.User)
	wireRental(r, handler.Rental)
	wireRating(r, handler.Rating)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

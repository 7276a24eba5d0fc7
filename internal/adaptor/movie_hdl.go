package adaptor

import (
	"errors"
	"net/http"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
	"movie-rental/internal/dto/response"
	"movie-rental/internal/store"
	"movie-rental/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewMovieHandler(st *store.Store, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		store: st,
		log:   log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies?sort=title|genre|release_year&page=&per_page=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	if !requireLoaded(w, h.store, entity.KindMovie) {
		return
	}
	req, ok := parseListRequest(w, r)
	if !ok {
		return
	}

	movies := h.store.Movies()
	if err := store.SortMovies(movies, req.Sort); err != nil {
		if errors.Is(err, store.ErrUnknownSort) {
			utils.ResponseBadRequest(w, "Invalid sort option", map[string]string{"sort": req.Sort})
			return
		}
		handleStoreError(w, h.log, err, "get movies")
		return
	}

	ratings := h.store.Ratings()
	data := make([]response.MovieResponse, 0, len(movies))
	for _, m := range movies {
		data = append(data, response.MovieToResponse(m, toStatsResponse(store.MovieRatingStats(ratings, m.ID))))
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", paginate(data, req))
}

// GetMovieRatingStats handles GET /api/movies/{id}/rating-stats
func (h *MovieHandler) GetMovieRatingStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "movie")
	if !ok {
		return
	}
	if !requireLoaded(w, h.store, entity.KindMovie, entity.KindRating) {
		return
	}
	if _, found := store.Find(h.store.Movies(), id); !found {
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	utils.ResponseSuccess(w, "Rating stats retrieved successfully", toStatsResponse(h.store.RatingStats(id)))
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.store.CreateMovie(r.Context(), &req).Await(r.Context())
	if err != nil {
		handleStoreError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PATCH /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "movie")
	if !ok {
		return
	}

	var req request.MovieUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.store.UpdateMovie(r.Context(), id, &req).Await(r.Context())
	if err != nil {
		handleStoreError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}. Rentals of the movie leave
// the mirror with it.
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "movie")
	if !ok {
		return
	}

	if _, err := h.store.DeleteMovie(r.Context(), id).Await(r.Context()); err != nil {
		handleStoreError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

func toStatsResponse(s store.RatingStats) response.MovieRatingStats {
	return response.MovieRatingStats{
		MovieID:       s.MovieID,
		AverageRating: s.Average,
		RatingCount:   s.Count,
	}
}

package adaptor

import (
	"net/http"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/dto/request"
	"movie-rental/internal/dto/response"
	"movie-rental/internal/store"
	"movie-rental/pkg/utils"

	"go.uber.org/zap"
)

type RatingHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewRatingHandler(st *store.Store, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		store: st,
		log:   log.With(zap.String("handler", "rating")),
	}
}

// GetRatings handles GET /api/ratings
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	if !requireLoaded(w, h.store, entity.KindRating) {
		return
	}
	req, ok := parseListRequest(w, r)
	if !ok {
		return
	}

	ratings := h.store.Ratings()
	names, titles := h.store.UserNames(), h.store.MovieTitles()
	data := make([]response.RatingResponse, 0, len(ratings))
	for _, rt := range ratings {
		data = append(data, response.RatingToResponse(rt, names[rt.UserID], titles[rt.MovieID]))
	}

	utils.ResponseSuccess(w, "Ratings retrieved successfully", paginate(data, req))
}

// GetRatingByID handles GET /api/ratings/{id}
func (h *RatingHandler) GetRatingByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "rating")
	if !ok {
		return
	}
	if !requireLoaded(w, h.store, entity.KindRating) {
		return
	}

	rating, found := h.store.Rating(id)
	if !found {
		utils.ResponseNotFound(w, "Rating not found")
		return
	}

	names, titles := h.store.UserNames(), h.store.MovieTitles()
	utils.ResponseSuccess(w, "Rating retrieved successfully",
		response.RatingToResponse(rating, names[rating.UserID], titles[rating.MovieID]))
}

// CreateRating handles POST /api/ratings. The body uses movieId and userId.
func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req request.RatingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rating, err := h.store.CreateRating(r.Context(), &req).Await(r.Context())
	if err != nil {
		handleStoreError(w, h.log, err, "create rating")
		return
	}

	utils.ResponseCreated(w, "Rating created successfully", rating)
}

// UpdateRating handles PATCH /api/ratings/{id}
func (h *RatingHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "rating")
	if !ok {
		return
	}

	var req request.RatingUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rating, err := h.store.UpdateRating(r.Context(), id, &req).Await(r.Context())
	if err != nil {
		handleStoreError(w, h.log, err, "update rating")
		return
	}

	utils.ResponseSuccess(w, "Rating updated successfully", rating)
}

// DeleteRating handles DELETE /api/ratings/{id}
func (h *RatingHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "rating")
	if !ok {
		return
	}

	if _, err := h.store.DeleteRating(r.Context(), id).Await(r.Context()); err != nil {
		handleStoreError(w, h.log, err, "delete rating")
		return
	}

	utils.ResponseSuccess(w, "Rating deleted successfully", nil)
}

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

type RentalHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewRentalHandler(st *store.Store, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		store: st,
		log:   log.With(zap.String("handler", "rental")),
	}
}

// sortKinds lists the collections a rental sort key reads besides rentals.
func sortKinds(key string) []entity.Kind {
	switch key {
	case store.SortUser:
		return []entity.Kind{entity.KindUser}
	case store.SortMovie:
		return []entity.Kind{entity.KindMovie}
	default:
		return nil
	}
}

// sortedRentals returns the mirrored rentals ordered by the sort query
// parameter, answering 400 for an unknown key.
func (h *RentalHandler) sortedRentals(w http.ResponseWriter, key string) ([]entity.Rental, bool) {
	rentals := h.store.Rentals()
	if err := store.SortRentals(rentals, h.store.Users(), h.store.Movies(), key); err != nil {
		if errors.Is(err, store.ErrUnknownSort) {
			utils.ResponseBadRequest(w, "Invalid sort option", map[string]string{"sort": key})
			return nil, false
		}
		handleStoreError(w, h.log, err, "sort rentals")
		return nil, false
	}
	return rentals, true
}

func (h *RentalHandler) toResponses(rentals []entity.Rental) []response.RentalResponse {
	names, titles := h.store.UserNames(), h.store.MovieTitles()
	out := make([]response.RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, response.RentalToResponse(r, names[r.UserID], titles[r.MovieID]))
	}
	return out
}

// GetRentals handles GET /api/rentals?sort=user|movie|due_date&page=&per_page=
func (h *RentalHandler) GetRentals(w http.ResponseWriter, r *http.Request) {
	req, ok := parseListRequest(w, r)
	if !ok {
		return
	}
	if !requireLoaded(w, h.store, append([]entity.Kind{entity.KindRental}, sortKinds(req.Sort)...)...) {
		return
	}

	rentals, ok := h.sortedRentals(w, req.Sort)
	if !ok {
		return
	}

	utils.ResponseSuccess(w, "Rentals retrieved successfully", paginate(h.toResponses(rentals), req))
}

// GetRentalsByUser handles GET /api/rentals/by-user?sort=
func (h *RentalHandler) GetRentalsByUser(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("sort")
	if !requireLoaded(w, h.store, append([]entity.Kind{entity.KindUser, entity.KindRental}, sortKinds(key)...)...) {
		return
	}

	rentals, ok := h.sortedRentals(w, key)
	if !ok {
		return
	}

	groups := store.GroupRentalsByUser(rentals, h.store.Users())
	data := make([]response.UserRentalsResponse, 0, len(groups))
	for _, g := range groups {
		data = append(data, response.UserRentalsResponse{
			User:    g.User,
			Rentals: h.toResponses(g.Rentals),
		})
	}

	utils.ResponseSuccess(w, "Rentals retrieved successfully", data)
}

// CreateRental handles POST /api/rentals
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req request.RentalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rental, err := h.store.CreateRental(r.Context(), &req).Await(r.Context())
	if err != nil {
		handleStoreError(w, h.log, err, "create rental")
		return
	}

	utils.ResponseCreated(w, "Rental created successfully", rental)
}

// UpdateRental handles PATCH /api/rentals/{id}
func (h *RentalHandler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "rental")
	if !ok {
		return
	}

	var req request.RentalUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rental, err := h.store.UpdateRental(r.Context(), id, &req).Await(r.Context())
	if err != nil {
		handleStoreError(w, h.log, err, "update rental")
		return
	}

	utils.ResponseSuccess(w, "Rental updated successfully", rental)
}

// DeleteRental handles DELETE /api/rentals/{id}
func (h *RentalHandler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "rental")
	if !ok {
		return
	}

	if _, err := h.store.DeleteRental(r.Context(), id).Await(r.Context()); err != nil {
		handleStoreError(w, h.log, err, "delete rental")
		return
	}

	utils.ResponseSuccess(w, "Rental deleted successfully", nil)
}

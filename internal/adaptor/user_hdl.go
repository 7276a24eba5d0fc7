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

type UserHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewUserHandler(st *store.Store, log *zap.Logger) *UserHandler {
	return &UserHandler{
		store: st,
		log:   log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	if !requireLoaded(w, h.store, entity.KindUser) {
		return
	}
	req, ok := parseListRequest(w, r)
	if !ok {
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", paginate(h.store.Users(), req))
}

// GetRentedMovies handles GET /api/users/{id}/rented-movies
func (h *UserHandler) GetRentedMovies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}
	if !requireLoaded(w, h.store, entity.KindUser, entity.KindRental) {
		return
	}
	if _, found := store.Find(h.store.Users(), id); !found {
		utils.ResponseNotFound(w, "User not found")
		return
	}

	utils.ResponseSuccess(w, "Rented movies retrieved successfully", response.RentedMoviesResponse{
		UserID:   id,
		MovieIDs: h.store.RentedMovieIDs(id),
	})
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.store.CreateUser(r.Context(), &req).Await(r.Context())
	if err != nil {
		handleStoreError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// UpdateUser handles PATCH /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	var req request.UserUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.store.UpdateUser(r.Context(), id, &req).Await(r.Context())
	if err != nil {
		handleStoreError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	if _, err := h.store.DeleteUser(r.Context(), id).Await(r.Context()); err != nil {
		handleStoreError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}

package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"movie-rental/internal/data/entity"
	"movie-rental/internal/data/gateway"
	"movie-rental/internal/dto/request"
	"movie-rental/internal/dto/response"
	"movie-rental/internal/store"
	"movie-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const msgLoadFailed = "Failed to load data."

// requireLoaded answers for a collection that cannot be shown yet and
// reports whether the caller may go on.
func requireLoaded(w http.ResponseWriter, st *store.Store, kinds ...entity.Kind) bool {
	for _, k := range kinds {
		switch st.State(k) {
		case store.StateReady:
		case store.StateFailed:
			utils.ResponseBadGateway(w, msgLoadFailed, nil)
			return false
		default:
			utils.ResponseUnavailable(w, fmt.Sprintf("Loading %s...", k.Path()[1:]))
			return false
		}
	}
	return true
}

func parseListRequest(w http.ResponseWriter, r *http.Request) (request.ListRequest, bool) {
	query := r.URL.Query()
	req := request.ListRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 0),
		Sort:    query.Get("sort"),
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid list parameters", validationErrors)
		return req, false
	}
	return req, true
}

func paginate[T any](items []T, req request.ListRequest) *response.PaginatedResponse[T] {
	start, end := req.Window(len(items))
	return response.NewPaginatedResponse(items[start:end], req.Page, req.Limit(), len(items))
}

func pathID(w http.ResponseWriter, r *http.Request, resource string) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid "+resource+" ID", nil)
	}
	return id, ok
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// handleStoreError maps a failed Store operation onto a response.
func handleStoreError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		ve *store.ValidationError
		we *gateway.WriteError
	)

	switch {
	case errors.As(err, &ve):
		log.Warn(operation+" validation failed", zap.Any("fields", ve.Fields))
		utils.ResponseBadRequest(w, "Validation failed", ve.Fields)

	case errors.Is(err, store.ErrNotLoaded):
		utils.ResponseUnavailable(w, "Data is still loading")

	case errors.Is(err, store.ErrClosed):
		utils.ResponseUnavailable(w, "Service is shutting down")

	case errors.As(err, &we) && we.NotFound():
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, fmt.Sprintf("%s not found", we.Resource))

	case errors.As(err, &we):
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseBadGateway(w, "Backend request failed", err.Error())

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn(operation+" abandoned by caller", zap.Error(err))
		utils.ResponseJSON(w, http.StatusGatewayTimeout, false, "Request abandoned before the backend answered", nil, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

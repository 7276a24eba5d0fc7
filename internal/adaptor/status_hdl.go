package adaptor

import (
	"net/http"

	"movie-rental/internal/store"
	"movie-rental/pkg/utils"

	"go.uber.org/zap"
)

type StatusHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewStatusHandler(st *store.Store, log *zap.Logger) *StatusHandler {
	return &StatusHandler{
		store: st,
		log:   log.With(zap.String("handler", "status")),
	}
}

// GetStatus handles GET /api/status
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.store.Status()

	message := "Data loaded"
	switch status.State {
	case store.StateLoading, store.StateUninitialized:
		message = "Loading..."
	case store.StateFailed:
		message = status.Error
	}
	utils.ResponseSuccess(w, message, status)
}

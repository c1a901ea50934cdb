package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/statusfeed/statusfeed-go/internal/middleware"
	"github.com/statusfeed/statusfeed-go/internal/model"
	"github.com/statusfeed/statusfeed-go/internal/service"
)

// StatusHandler handles HTTP requests for status post operations.
type StatusHandler struct {
	service *service.StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(svc *service.StatusService) *StatusHandler {
	return &StatusHandler{service: svc}
}

// HandleCreate handles POST /api/status/ requests.
func (h *StatusHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse(kindAuthenticationFailed, "Unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(kindValidationFailed, "request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse(kindValidationFailed, "invalid request body"))
		return
	}

	resp, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		if errors.Is(err, service.ErrContentRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(kindValidationFailed, err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse(kindInternal, "internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/status/ requests. Only the caller's own
// statuses are returned.
func (h *StatusHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse(kindAuthenticationFailed, "Unauthorized"))
		return
	}

	statuses, err := h.service.List(r.Context(), user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse(kindInternal, "internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, statuses)
}

// HandleGet handles GET /api/status/{status_id}/ requests. Retrieval is not
// ownership checked; any authenticated caller may read any status.
func (h *StatusHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := statusID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStatusNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(kindNotFound, err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse(kindInternal, "internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/status/{status_id}/ requests.
func (h *StatusHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse(kindAuthenticationFailed, "Unauthorized"))
		return
	}

	id, ok := statusID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(kindValidationFailed, "request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse(kindValidationFailed, "invalid request body"))
		return
	}

	resp, err := h.service.Update(r.Context(), user, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(kindValidationFailed, err.Error()))
		case errors.Is(err, service.ErrStatusNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(kindNotFound, err.Error()))
		case errors.Is(err, service.ErrNotStatusOwner):
			writeJSON(w, http.StatusForbidden, errorResponse(kindPermissionDenied, err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse(kindInternal, "internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/status/{status_id}/ requests.
func (h *StatusHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse(kindAuthenticationFailed, "Unauthorized"))
		return
	}

	id, ok := statusID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, service.ErrStatusNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(kindNotFound, err.Error()))
		case errors.Is(err, service.ErrNotStatusOwner):
			writeJSON(w, http.StatusForbidden, errorResponse(kindPermissionDenied, err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse(kindInternal, "internal server error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// statusID parses the status_id URL parameter. A non-numeric id gets the same
// 404 a numeric-but-absent id would.
func statusID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "status_id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusNotFound, errorResponse(kindNotFound, "status not found"))
		return 0, false
	}
	return id, true
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hongminglow/user-service/internal/http/respond"
	"github.com/hongminglow/user-service/internal/logger"
	"github.com/hongminglow/user-service/internal/models/dto"
	"github.com/hongminglow/user-service/internal/service"
)

// UserHandler exposes the user lifecycle over HTTP.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler constructs the handler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register attaches user routes to the mux.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users", h.handleCreate)
	mux.HandleFunc("GET /api/users/{id}", h.handleGet)
	mux.HandleFunc("PUT /api/users/{id}", h.handleUpdate)
	mux.HandleFunc("PUT /api/users/{id}/status", h.handleUpdateStatus)
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	user, err := h.users.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, "create user", err)
		return
	}
	respond.JSON(w, http.StatusCreated, "user created", user)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, "get user", err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", user)
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	user, err := h.users.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, "update user", err)
		return
	}
	respond.JSON(w, http.StatusOK, "user updated", user)
}

func (h *UserHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	user, err := h.users.UpdateStatus(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, "update user status", err)
		return
	}
	respond.JSON(w, http.StatusOK, "user status updated", user)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	var valErr *service.ValidationError
	switch {
	case errors.As(err, &valErr):
		respond.Invalid(w, valErr.Fields)
	case errors.Is(err, service.ErrUserNotFound):
		respond.Error(w, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrUserConflict):
		respond.Error(w, http.StatusConflict, "user was modified concurrently, retry")
	default:
		logger.Error("%s: %v", op, err)
		respond.Error(w, http.StatusInternalServerError, "failed to "+op)
	}
}

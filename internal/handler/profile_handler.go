package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"artisan-service/internal/domain"
	"artisan-service/internal/middleware"
	"artisan-service/internal/service"
	"artisan-service/pkg/response"
)

type ProfileHandler struct {
	service *service.ProfileService
	logger  *zap.Logger
}

func NewProfileHandler(s *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{service: s, logger: logger}
}

// Create onboards the caller's artisan profile.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.GetAuthSubject(r.Context())
	if !ok || subject == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var in domain.NewProfileInput
	if err := decodeJSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), subject, in)
	if err != nil {
		h.logger.Warn("profile create rejected", zap.String("subject", subject), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	h.logger.Info("profile created", zap.String("subject", subject), zap.String("id", p.ID.Hex()))
	response.JSON(w, http.StatusCreated, p)
}

// Me returns the caller's own profile.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.GetAuthSubject(r.Context())
	if !ok || subject == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	p, err := h.service.GetByAuthSubject(r.Context(), subject)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// Get returns one seller profile by id.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// List returns all seller profiles for the explore page.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list profiles", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profiles)
}

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

type ListingHandler struct {
	listings *service.ListingService
	profiles *service.ProfileService
	logger   *zap.Logger
}

func NewListingHandler(listings *service.ListingService, profiles *service.ProfileService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{listings: listings, profiles: profiles, logger: logger}
}

// callerProfile resolves the authenticated caller to their profile.
func (h *ListingHandler) callerProfile(w http.ResponseWriter, r *http.Request) (*domain.Profile, bool) {
	subject, ok := middleware.GetAuthSubject(r.Context())
	if !ok || subject == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	p, err := h.profiles.GetByAuthSubject(r.Context(), subject)
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return p, true
}

// Create lists a new product under the caller's profile.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := h.callerProfile(w, r)
	if !ok {
		return
	}

	var in domain.NewListingInput
	if err := decodeJSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.listings.Create(r.Context(), p.ID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.logger.Info("listing created", zap.String("id", l.ID.Hex()), zap.String("owner", p.ID.Hex()))
	response.JSON(w, http.StatusCreated, l)
}

// Get returns one listing joined with its seller.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	l, err := h.listings.GetWithSeller(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, l)
}

// List returns every listing with its seller for the explore page.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	ls, err := h.listings.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list listings", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, ls)
}

// Mine returns the caller's own listings for the dashboard.
func (h *ListingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	p, ok := h.callerProfile(w, r)
	if !ok {
		return
	}

	ls, err := h.listings.ListByProfile(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, ls)
}

// Delete removes one of the caller's listings.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := h.callerProfile(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.listings.Delete(r.Context(), id, p.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	h.logger.Info("listing deleted", zap.String("id", id), zap.String("owner", p.ID.Hex()))
	response.JSON(w, http.StatusOK, map[string]string{"deleted": id})
}

package catalog

import (
	"net/http"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the catalog module.
type Handler struct {
	repo Repository
}

// NewHandler creates a new catalog handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes registers the public catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.ListMenu)
	r.Get("/reviews", h.ListReviews)
}

// ListMenu handles GET /menu.
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListMenu(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, items)
}

// ListReviews handles GET /reviews.
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.ListReviews(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, reviews)
}

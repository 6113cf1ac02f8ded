package cart

import (
	"encoding/json"
	"net/http"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the cart module.
type Handler struct {
	repo      Repository
	validator *validator.Validate
}

// NewHandler creates a new cart handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo:      repo,
		validator: validator.New(),
	}
}

// RegisterRoutes registers the cart routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/cart", h.AddItem)
	r.Get("/cart", h.ListItems)
	r.Delete("/cart/{id}", h.DeleteItem)
}

// AddItemRequest represents the add-to-cart request body.
type AddItemRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// AddItem handles POST /cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	id, err := h.repo.AddItem(r.Context(), &domain.CartItem{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// ListItems handles GET /cart?email=.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	items, err := h.repo.ListByOwner(r.Context(), email)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, items)
}

// DeleteItem handles DELETE /cart/{id}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repo.DeleteItem(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrInvalidID, Status: http.StatusBadRequest, Message: "invalid id"},
		})
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/identity/jwt"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the identity module.
type Handler struct {
	service   *Service
	tokens    *jwt.Authenticator
	validator *validator.Validate
}

// NewHandler creates a new identity handler.
func NewHandler(service *Service, tokens *jwt.Authenticator) *Handler {
	return &Handler{
		service:   service,
		tokens:    tokens,
		validator: validator.New(),
	}
}

// RegisterPublicRoutes registers routes that need no credentials.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/jwt", h.IssueToken)
	r.Post("/users", h.Register)
}

// RegisterProtectedRoutes registers routes behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/users/admin/{email}", h.CheckAdmin)
}

// RegisterAdminRoutes registers routes behind the admin gate.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/users", h.ListUsers)
	r.Patch("/users/admin/{id}", h.PromoteAdmin)
	r.Delete("/users/{id}", h.DeleteUser)
}

// TokenRequest represents the token issuance request body.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// IssueToken handles POST /jwt.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// Register handles POST /users. Registering an email that already exists is
// a no-op, reported with a null insertedId rather than an error, so the
// client can POST on every sign-in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	id, err := h.service.Register(r.Context(), &domain.User{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			httputil.JSON(w, http.StatusOK, map[string]interface{}{
				"message":    "User already exists!",
				"insertedId": nil,
			})
			return
		}
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// CheckAdmin handles GET /users/admin/{email}. A caller may only query
// their own admin status; a mismatched token identity is rejected before
// any lookup happens, regardless of the caller's actual role.
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if email != httputil.GetEmail(r.Context()) {
		httputil.Error(w, http.StatusForbidden, "forbidden")
		return
	}

	admin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]bool{"admin": admin})
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, users)
}

// PromoteAdmin handles PATCH /users/admin/{id}.
func (h *Handler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.PromoteToAdmin(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
		{Error: ErrInvalidID, Status: http.StatusBadRequest, Message: "invalid id"},
	})
}

package handlers

import (
	"net/http"

	"github.com/dom/storefront-api/internal/api/middleware"
	"github.com/dom/storefront-api/internal/service"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	log         *zap.Logger
}

func NewUserHandler(userService *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// profileRequest fields other than email keep their stored value when absent.
type profileRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   *string `json:"password" validate:"omitempty,min=6"`
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	AvatarPath *string `json:"avatarPath"`
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	user, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, "user.Profile", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileView(user))
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req profileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.log, "user.UpdateProfile", err)
		return
	}

	if _, err := h.userService.UpdateProfile(r.Context(), userID, service.UpdateProfileInput{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Phone:      req.Phone,
		AvatarPath: req.AvatarPath,
	}); err != nil {
		respondError(w, h.log, "user.UpdateProfile", err)
		return
	}

	user, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, "user.UpdateProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileView(user))
}

// ToggleFavorite handles PATCH /users/profile/favorites/{productId}.
func (h *UserHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	if err := h.userService.ToggleFavorite(r.Context(), userID, productID); err != nil {
		respondError(w, h.log, "user.ToggleFavorite", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

package handler

import (
	"encoding/json"
	"net/http"

	"dsaquest/internal/api/middleware"
	"dsaquest/internal/app/service"
	"dsaquest/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profile/{userId}", h.getProfile)
	r.Group(func(authed chi.Router) {
		authed.Use(middleware.Authenticator)
		authed.Put("/profile/{userId}", h.updateProfile)
	})
}

func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.userService.GetProfile(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	// Only the owner may edit a profile.
	if authedID, ok := middleware.GetUserIDFromContext(r.Context()); !ok || authedID != userID {
		common.RespondWithError(w, http.StatusForbidden, "Cannot edit another user's profile")
		return
	}

	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	user, err := h.userService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

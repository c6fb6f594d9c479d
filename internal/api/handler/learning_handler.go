package handler

import (
	"net/http"

	"dsaquest/internal/app/service"
	"dsaquest/internal/common"

	"github.com/go-chi/chi/v5"
)

type LearningHandler struct {
	userService *service.UserService
}

func NewLearningHandler(userService *service.UserService) *LearningHandler {
	return &LearningHandler{userService: userService}
}

func (h *LearningHandler) RegisterRoutes(r chi.Router) {
	r.Get("/progress", h.getProgress)
}

func (h *LearningHandler) getProgress(w http.ResponseWriter, r *http.Request) {
	resp, err := h.userService.GetLearningProgress(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

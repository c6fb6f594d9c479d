package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dsaquest/internal/app/service"
	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type DSAHandler struct {
	problemService    *service.ProblemService
	executionService  *service.ExecutionService
	completionService *service.CompletionService
	leaderboard       *service.LeaderboardService
	userService       *service.UserService
}

func NewDSAHandler(
	problemService *service.ProblemService,
	executionService *service.ExecutionService,
	completionService *service.CompletionService,
	leaderboard *service.LeaderboardService,
	userService *service.UserService,
) *DSAHandler {
	return &DSAHandler{
		problemService:    problemService,
		executionService:  executionService,
		completionService: completionService,
		leaderboard:       leaderboard,
		userService:       userService,
	}
}

type runTestsResponse struct {
	Success bool `json:"success"`
	*model.TestBatchResult
}

func (h *DSAHandler) RegisterRoutes(r chi.Router) {
	r.Get("/topics", h.topics)
	r.Get("/problems", h.problems)
	r.Post("/execute", h.execute)
	r.Post("/run-tests", h.runTests)
	r.Post("/complete", h.complete)
	r.Get("/leaderboard", h.leaderboardView)
	r.Get("/user-progress/{userId}", h.userProgress)
}

func (h *DSAHandler) topics(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, h.problemService.GetTopics())
}

func (h *DSAHandler) problems(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	resp, err := h.problemService.GetProblems(
		r.Context(),
		r.URL.Query().Get("topic"),
		r.URL.Query().Get("difficulty"),
		page,
	)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *DSAHandler) execute(w http.ResponseWriter, r *http.Request) {
	var req service.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	resp, err := h.executionService.Execute(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *DSAHandler) runTests(w http.ResponseWriter, r *http.Request) {
	var req service.RunTestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	batch, err := h.executionService.RunTests(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, runTestsResponse{
		Success:         true,
		TestBatchResult: batch,
	})
}

func (h *DSAHandler) complete(w http.ResponseWriter, r *http.Request) {
	var req service.CompleteProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	result, err := h.completionService.CompleteProblem(r.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyCompleted) {
			common.RespondWithJSON(w, http.StatusConflict, common.ErrorResponse{
				Error:            "Problem already completed",
				AlreadyCompleted: true,
			})
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

// LeaderboardAlias serves the global /api/leaderboard route.
func (h *DSAHandler) LeaderboardAlias(w http.ResponseWriter, r *http.Request) {
	h.leaderboardView(w, r)
}

func (h *DSAHandler) leaderboardView(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.leaderboard.GetLeaderboard(r.Context(), limit, r.URL.Query().Get("userId"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, entries)
}

func (h *DSAHandler) userProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	resp, err := h.userService.GetProgress(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

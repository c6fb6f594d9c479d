package api

import (
	"net/http"
	"time"

	"dsaquest/internal/api/handler"
	"dsaquest/internal/app/service"
	"dsaquest/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	problemService *service.ProblemService,
	executionService *service.ExecutionService,
	completionService *service.CompletionService,
	leaderboardService *service.LeaderboardService,
	userService *service.UserService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	// Puts verified claims in the context; routes that need them enforce via
	// middleware.Authenticator.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		authHandler := handler.NewAuthHandler(authService)
		api.Route("/auth", authHandler.RegisterRoutes)

		dsaHandler := handler.NewDSAHandler(problemService, executionService, completionService, leaderboardService, userService)
		api.Route("/dsa", dsaHandler.RegisterRoutes)

		userHandler := handler.NewUserHandler(userService)
		api.Route("/user", userHandler.RegisterRoutes)

		learningHandler := handler.NewLearningHandler(userService)
		api.Route("/learning", learningHandler.RegisterRoutes)

		// Global leaderboard alias, same projection as /api/dsa/leaderboard
		api.Get("/leaderboard", dsaHandler.LeaderboardAlias)
	})

	return r
}

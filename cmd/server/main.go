package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dsaquest/internal/api"
	"dsaquest/internal/app/service"
	"dsaquest/internal/app/worker"
	"dsaquest/internal/common/security"
	"dsaquest/internal/domain/repository"
	"dsaquest/internal/platform/cache"
	"dsaquest/internal/platform/catalog"
	"dsaquest/internal/platform/config"
	"dsaquest/internal/platform/database"
	"dsaquest/internal/platform/executor"
	"dsaquest/internal/platform/logger"

	"go.uber.org/zap"
)

func main() {
	config.Load()
	logger.Init()
	defer logger.Sync()

	security.InitJWT()

	database.Connect()
	defer database.Close()

	cache.ConnectRedis()
	defer cache.CloseRedis()

	userRepo := repository.NewPgUserRepository(database.DB)
	progressRepo := repository.NewPgProgressRepository(database.DB)
	txRunner := repository.NewTxRunner(database.DB)

	authService := service.NewAuthService(userRepo)
	problemService := service.NewProblemService(catalog.NewHTTPClient())
	executionService := service.NewExecutionService(executor.NewPistonClient())
	leaderboardService := service.NewLeaderboardService(
		userRepo, cache.RDB,
		config.AppConfig.LeaderboardCacheKey,
		config.AppConfig.LeaderboardCacheTTL,
	)
	completionService := service.NewCompletionService(userRepo, progressRepo, leaderboardService, txRunner)
	userService := service.NewUserService(userRepo, progressRepo)

	rankWorker := worker.NewRankWorker(leaderboardService, config.AppConfig.RankSweepSchedule)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	if err := rankWorker.Start(workerCtx); err != nil {
		zap.L().Fatal("failed to start rank worker", zap.Error(err))
	}

	router := api.NewRouter(authService, problemService, executionService, completionService, leaderboardService, userService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		zap.L().Info("server starting", zap.String("port", config.AppConfig.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop

	zap.L().Info("shutting down")
	workerCancel()
	rankWorker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("server shutdown failed", zap.Error(err))
	}
	zap.L().Info("server stopped gracefully")
}

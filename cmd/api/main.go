package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vitalkey/vitalkey-api/internal/config"
	"github.com/vitalkey/vitalkey-api/internal/handler"
	authHandler "github.com/vitalkey/vitalkey-api/internal/handler/auth"
	medicoHandler "github.com/vitalkey/vitalkey-api/internal/handler/medico"
	pacienteHandler "github.com/vitalkey/vitalkey-api/internal/handler/paciente"
	"github.com/vitalkey/vitalkey-api/internal/middleware"
	"github.com/vitalkey/vitalkey-api/internal/repository/postgres"
	"github.com/vitalkey/vitalkey-api/internal/router"
	authService "github.com/vitalkey/vitalkey-api/internal/service/auth"
	medicoService "github.com/vitalkey/vitalkey-api/internal/service/medico"
	pacienteService "github.com/vitalkey/vitalkey-api/internal/service/paciente"
	"github.com/vitalkey/vitalkey-api/pkg/auth"
	"github.com/vitalkey/vitalkey-api/pkg/logger"
	"github.com/vitalkey/vitalkey-api/pkg/metrics"
	"github.com/vitalkey/vitalkey-api/pkg/security"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Repositories
	medicoRepo := postgres.NewMedicoRepository(db)
	pacienteRepo := postgres.NewPacienteRepository(db)

	// Services
	jwtSvc := auth.NewJWTService(auth.Config{
		Secret:        cfg.JWT.Secret,
		Algorithm:     cfg.JWT.Algorithm,
		ExpiryMinutes: cfg.JWT.ExpiryMinutes,
	})
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	authSvc := authService.NewService(medicoRepo, jwtSvc, hasher)
	medicoSvc := medicoService.NewService(medicoRepo, hasher)
	pacienteSvc := pacienteService.NewService(pacienteRepo)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	authH := authHandler.NewHandler(authSvc)
	medicoH := medicoHandler.NewHandler(medicoSvc)
	pacienteH := pacienteHandler.NewHandler(pacienteSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.NewRouter(
		authMiddleware,
		authH,
		medicoH,
		pacienteH,
		healthH,
		metrics.New("vitalkey"),
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			TimeoutSeconds: cfg.Server.TimeoutSeconds,
			CORS:           middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}

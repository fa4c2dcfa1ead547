package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/invitewall/invitewall-api/internal/config"
	"github.com/invitewall/invitewall-api/internal/domain/confirmation"
	"github.com/invitewall/invitewall-api/internal/domain/photo"
	"github.com/invitewall/invitewall-api/internal/middleware"
	"github.com/invitewall/invitewall-api/internal/pkg/database"
	"github.com/invitewall/invitewall-api/internal/pkg/ledger"
	"github.com/invitewall/invitewall-api/internal/pkg/logger"
	"github.com/invitewall/invitewall-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting InviteWall API")

	// The process owns one handle per external system. Both connect lazily
	// on first use; nothing dials during startup.
	pg := database.NewPostgres(cfg.DatabaseURL)
	defer pg.Close()

	sheet := ledger.NewSheetsWriter(ledger.Config{
		CredentialsJSON: cfg.GoogleCredentialsJSON,
		CredentialsFile: cfg.GoogleCredentialsFile,
		SpreadsheetID:   cfg.SpreadsheetID,
		SheetName:       cfg.SheetName,
	})
	if sheet.Enabled() {
		// Best-effort header initialization; appends do not depend on it.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := sheet.EnsureHeader(ctx); err != nil {
			log.Warn().Err(err).Msg("Google Sheets not reachable at startup")
		}
		cancel()
	} else {
		log.Warn().Msg("Ledger credentials absent, confirmations will not be mirrored")
	}

	// ---------- Repositories ----------
	photoRepo := photo.NewRepository(pg)
	confirmationRepo := confirmation.NewRepository(pg)

	// ---------- Services ----------
	photoService := photo.NewService(photoRepo, cfg.MaxUploadBytes)
	confirmationService := confirmation.NewService(confirmationRepo, sheet)

	// ---------- Handlers ----------
	photoHandler := photo.NewHandler(photoService, cfg.MaxUploadBytes)
	confirmationHandler := confirmation.NewHandler(confirmationService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
			response.OK(w, map[string]string{
				"message":   "Servidor backend funcionando correctamente",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		})

		r.Mount("/fotos", photoHandler.Routes())
		r.Mount("/confirmacion", confirmationHandler.SubmitRoutes())
		r.Mount("/confirmaciones", confirmationHandler.ListRoutes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

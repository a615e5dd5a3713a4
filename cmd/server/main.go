package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddinginvite/config"
	_ "weddinginvite/docs"
	"weddinginvite/internal/adapters/auth"
	"weddinginvite/internal/adapters/email"
	"weddinginvite/internal/adapters/imaging"
	"weddinginvite/internal/adapters/storage"
	deliveryhttp "weddinginvite/internal/delivery/http"
	"weddinginvite/internal/delivery/http/controllers"
	"weddinginvite/internal/delivery/http/middleware"
	"weddinginvite/internal/domain"
	"weddinginvite/internal/repository/postgres"
	"weddinginvite/internal/services"
)

const shutdownTimeout = 15 * time.Second

// @title						Wedding Invitation API
// @version					1.0
// @description				Public invitation pages, RSVPs and the admin console backend.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	store, publicObjects, err := newObjectStore(cfg, httpClient)
	if err != nil {
		return err
	}

	verifier := newTokenVerifier(cfg, httpClient, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	clientRepo := postgres.NewClientRepository(db)
	ceremonyRepo := postgres.NewCeremonyRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)
	blessingRepo := postgres.NewBlessingRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)

	timeout := cfg.RequestTimeout
	invitationService := services.NewInvitationService(services.InvitationDeps{
		Clients:    clientRepo,
		Ceremonies: ceremonyRepo,
		Photos:     photoRepo,
		Templates:  templateRepo,
		RSVPs:      rsvpRepo,
		Blessings:  blessingRepo,
		Settings:   settingsRepo,
		Store:      store,
		Email:      emailService,
	}, logger, timeout)
	clientService := services.NewClientService(clientRepo, services.NewSlugAllocator(clientRepo), timeout)
	ceremonyService := services.NewCeremonyService(clientRepo, ceremonyRepo, timeout)
	photoService := services.NewPhotoService(clientRepo, photoRepo, store, imaging.NewInspector(), timeout)
	guestbookService := services.NewGuestbookService(clientRepo, rsvpRepo, templateRepo, timeout)
	settingsService := services.NewSettingsService(settingsRepo, timeout)

	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Health:     controllers.NewHealthController(),
		Invite:     controllers.NewInviteController(logger, invitationService),
		Clients:    controllers.NewClientController(logger, clientService),
		Ceremonies: controllers.NewCeremonyController(logger, ceremonyService),
		Photos:     controllers.NewPhotoController(logger, photoService, cfg.MaxUploadBytes),
		Guestbook:  controllers.NewGuestbookController(logger, guestbookService),
		Settings:   controllers.NewSettingsController(logger, settingsService),
	}, middleware.RequireAuth(verifier, logger), publicObjects)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, router)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "storage", cfg.Storage.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newObjectStore returns the configured store and, for the local provider,
// the handler that serves its public URLs.
func newObjectStore(cfg *config.Config, httpClient *http.Client) (domain.ObjectStore, http.Handler, error) {
	if cfg.Storage.Provider == "local" {
		local, err := storage.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return local, local.Handler(), nil
	}
	s3Store, err := storage.NewS3Store(storage.S3Config{
		Endpoint:        cfg.Storage.S3Endpoint,
		Region:          cfg.Storage.S3Region,
		AccessKeyID:     cfg.Storage.S3AccessKeyID,
		SecretAccessKey: cfg.Storage.S3SecretAccessKey,
		Bucket:          cfg.Storage.Bucket,
		PublicBaseURL:   cfg.Storage.PublicBaseURL,
	}, httpClient)
	if err != nil {
		return nil, nil, err
	}
	return s3Store, nil, nil
}

func newTokenVerifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) domain.TokenVerifier {
	if cfg.SupabaseJWTSecret != "" {
		logger.Info("verifying admin tokens locally")
		return auth.NewJWTVerifier(cfg.SupabaseJWTSecret, cfg.JWTAudience)
	}
	logger.Info("verifying admin tokens with the auth service", "url", cfg.SupabaseURL)
	return auth.NewGoTrueVerifier(httpClient, cfg.SupabaseURL, cfg.SupabaseAnonKey)
}

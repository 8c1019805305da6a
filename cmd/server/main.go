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

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/luminainteriors/lumina-be/internal/auth"
	"github.com/luminainteriors/lumina-be/internal/config"
	"github.com/luminainteriors/lumina-be/internal/intake"
	"github.com/luminainteriors/lumina-be/internal/mail"
	"github.com/luminainteriors/lumina-be/internal/media"
	"github.com/luminainteriors/lumina-be/internal/secrets"
	"github.com/luminainteriors/lumina-be/internal/server"
	"github.com/luminainteriors/lumina-be/internal/sheets"
	"github.com/luminainteriors/lumina-be/internal/storage/filestore"
	"github.com/luminainteriors/lumina-be/internal/storage/postgres"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// Optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	files, err := filestore.New(cfg.DataDir)
	if err != nil {
		return err
	}

	sealer, err := secrets.NewSealer(cfg.EncryptionKey)
	if err != nil {
		return err
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	var sheetAppender intake.SheetAppender
	if cfg.SheetsEnabled() {
		appender, err := sheets.New(ctx, cfg.SheetsCredentialsFile, cfg.SheetsSpreadsheetID, cfg.SheetsRange)
		if err != nil {
			logger.Warn("sheets client init failed, spreadsheet logging disabled", "error", err)
		} else {
			sheetAppender = appender
		}
	}

	var mailSender intake.MailSender
	if cfg.MailEnabled() {
		mailer, err := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.MailTo)
		if err != nil {
			logger.Warn("mail client init failed, notifications disabled", "error", err)
		} else {
			mailSender = mailer
		}
	}

	var uploader *media.Uploader
	if cfg.MinioEnabled() {
		uploader, err = media.New(ctx, media.Options{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			return err
		}
	}

	intakeSvc := intake.New(store, sealer, sheetAppender, mailSender, logger)

	// Hourly sweep of expired notifications.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		purgeCtx, purgeCancel := context.WithTimeout(context.Background(), time.Minute)
		defer purgeCancel()
		if n, err := store.PurgeExpired(purgeCtx); err != nil {
			logger.Error("notification purge failed", "error", err)
		} else if n > 0 {
			logger.Info("purged expired notifications", "count", n)
		}
	}); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := server.New(cfg, server.Deps{
		Store:    store,
		Files:    files,
		Tokens:   tokens,
		Intake:   intakeSvc,
		Uploader: uploader,
		Logger:   logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.HTTPAddress())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prawat/portfolio/internal/config"
	"github.com/prawat/portfolio/internal/contact"
	"github.com/prawat/portfolio/internal/mailer"
	"github.com/prawat/portfolio/internal/server"
	"github.com/prawat/portfolio/internal/session"
	"github.com/prawat/portfolio/internal/site"
)

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()
			if port > 0 {
				cfg.Server.Port = port
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}

func serve(parent context.Context, cfg *config.Config, logger *zap.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender, err := mailer.New(cfg.Contact.Delivery, logger.Named("mailer"))
	if err != nil {
		return err
	}
	logger.Info("contact delivery configured", zap.String("provider", cfg.Contact.Delivery.Provider))

	page, err := site.Render(cfg.Site)
	if err != nil {
		return fmt.Errorf("rendering content: %w", err)
	}

	validate := validator.New()
	formLogger := logger.Named("contact")
	sessions := session.NewRegistry(
		cfg.Contact.SessionTTL,
		cfg.Contact.SubmitsPerMinute,
		cfg.Contact.SubmitBurst,
		func() *contact.Form {
			return contact.NewForm(sender,
				contact.WithFields(cfg.Contact.Fields...),
				contact.WithResetDelay(cfg.Contact.ResetDelay),
				contact.WithSendTimeout(cfg.Contact.SendTimeout),
				contact.WithMessages(cfg.Contact.SuccessMessage, cfg.Contact.FailureMessage),
				contact.WithValidator(validate),
				contact.WithLogger(formLogger))
		},
		logger.Named("session"))
	go sessions.Run(ctx)

	srv, err := server.New(cfg, page, sessions, logger.Named("http"))
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

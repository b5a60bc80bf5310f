package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/whiteelite/solgate/internal/api"
	"github.com/whiteelite/solgate/internal/config"
	"github.com/whiteelite/solgate/internal/domain/repositories"
	sdk "github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana"
	"github.com/whiteelite/solgate/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/solgate/internal/logging"
	"github.com/whiteelite/solgate/internal/metrics"
)

var initializeAudit repositories.InitializeMessageQueue = repository.InitializeKafkaMessageQueue

// ServeOptions holds flags for the serve command. Set flags override the
// environment.
type ServeOptions struct {
	Addr               string
	AllowSecretSigning bool
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(rootOpts, opts, cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides SOLGATE_ADDR)")
	cmd.Flags().BoolVar(&opts.AllowSecretSigning, "allow-secret-signing", false, "enable POST /message/sign (overrides SOLGATE_ALLOW_SECRET_SIGNING)")

	return cmd
}

func loadServeConfig(rootOpts *RootOptions, opts *ServeOptions, cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(rootOpts.EnvFile)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("addr") {
		cfg.Addr = opts.Addr
	}
	if cmd.Flags().Changed("allow-secret-signing") {
		cfg.AllowSecretSigning = opts.AllowSecretSigning
	}
	return cfg, cfg.Validate()
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	var events repositories.MessageQueueProducer
	if cfg.AuditEnabled() {
		params := repository.KafkaMessageQueueParams{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			OnError: func(err error) {
				logger.WithError(err).Warn("audit publish failed")
			},
		}
		events, err = initializeAudit(params)
		if err != nil {
			return err
		}
		defer events.Close()

		logger.WithFields(logrus.Fields(params.Get())).Info("instruction audit stream enabled")
	}

	if cfg.AllowSecretSigning {
		logger.Warn("message signing with caller-supplied secret keys is enabled")
	}

	server := api.NewServer(api.Options{
		Client:          sdk.NewClient(sdk.Config{AllowSecretSigning: cfg.AllowSecretSigning}),
		Logger:          logger,
		Metrics:         metrics.New(),
		Events:          events,
		CORSOrigins:     cfg.CORSOrigins,
		MaxBodyBytes:    cfg.MaxBodyBytes,
		Addr:            cfg.Addr,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})

	return server.Run(ctx)
}

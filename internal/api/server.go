// Package api exposes the instruction builders over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/blocto/solana-go-sdk/types"
	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	entities "github.com/whiteelite/solgate/internal/domain/entities/solana"
	"github.com/whiteelite/solgate/internal/domain/repositories"
	sdk "github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana"
	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/mappers"
	"github.com/whiteelite/solgate/internal/metrics"
)

type Options struct {
	Client  *sdk.Client
	Logger  *logrus.Logger
	Metrics *metrics.Metrics

	// Events receives an InstructionBuilt entity for every instruction
	// built. Nil disables the audit stream.
	Events repositories.MessageQueueProducer

	CORSOrigins  []string
	MaxBodyBytes int64

	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server holds no per-request state; handlers only read its fields.
type Server struct {
	client  *sdk.Client
	logger  *logrus.Logger
	metrics *metrics.Metrics
	events  repositories.MessageQueueProducer

	corsOrigins  []string
	maxBodyBytes int64

	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

func NewServer(opts Options) *Server {
	if opts.Client == nil {
		opts.Client = sdk.NewClient(sdk.Config{})
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 15 * time.Second
	}

	return &Server{
		client:          opts.Client,
		logger:          opts.Logger,
		metrics:         opts.Metrics,
		events:          opts.Events,
		corsOrigins:     opts.CORSOrigins,
		maxBodyBytes:    opts.MaxBodyBytes,
		addr:            opts.Addr,
		readTimeout:     opts.ReadTimeout,
		writeTimeout:    opts.WriteTimeout,
		shutdownTimeout: opts.ShutdownTimeout,
	}
}

// Handler returns the full HTTP handler: routes, middleware and CORS.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/keypair", s.handleKeypair).Methods(http.MethodPost)
	r.HandleFunc("/message/sign", s.handleSignMessage).Methods(http.MethodPost)
	r.HandleFunc("/message/verify", s.handleVerifyMessage).Methods(http.MethodPost)
	r.HandleFunc("/send/sol", s.handleSendSOL).Methods(http.MethodPost)
	r.HandleFunc("/send/token", s.handleSendToken).Methods(http.MethodPost)
	r.HandleFunc("/token/create", s.handleCreateToken).Methods(http.MethodPost)
	r.HandleFunc("/token/mint", s.handleMintToken).Methods(http.MethodPost)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.metrics.RecordFailure(kindNotFound)
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Use(s.metrics.Middleware, s.recoverPanics)

	return cors(s.corsOrigins, requestLogger(s.logger)(r))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		WriteTimeout:      s.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.addr).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeData(w, map[string]string{"status": "ok"})
}

// decodeJSON reads a size-limited JSON body into dst. On failure it writes
// the failure envelope and returns false.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		loggerFrom(r.Context(), s.logger).WithError(err).Debug("malformed request body")
		s.metrics.RecordFailure(kindRequest)
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// fail reports an sdk error through the failure envelope.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)

	entry := loggerFrom(r.Context(), s.logger).WithError(err).WithField("kind", kind)
	if kind == kindBuilder || kind == kindInternal {
		entry.Warn("request failed")
	} else {
		entry.Debug("request rejected")
	}

	s.metrics.RecordFailure(kind)
	writeError(w, status, err.Error())
}

// instructionBuilt records a successfully built instruction in metrics and,
// when enabled, the audit stream.
func (s *Server) instructionBuilt(r *http.Request, kind entities.InstructionKind, ix types.Instruction) {
	s.metrics.RecordInstruction(string(kind))

	if s.events == nil {
		return
	}
	if !s.events.Publish(mappers.ToInstructionBuilt(kind, ix)) {
		s.metrics.RecordAuditDropped()
		loggerFrom(r.Context(), s.logger).WithField("kind", kind).Warn("audit event dropped")
	}
}

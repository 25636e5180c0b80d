package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inkwell-ai/inkwell/internal/audit"
	"github.com/inkwell-ai/inkwell/internal/config"
	"github.com/inkwell-ai/inkwell/internal/provider"
	"github.com/inkwell-ai/inkwell/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	log, err := buildLogger(cfg.Logging.Mode)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	prov, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	sinks, err := buildSinks(cfg, log)
	if err != nil {
		return err
	}
	emitter := audit.NewEmitter(audit.EmitterConfig{
		QueueSize:       cfg.Audit.QueueSize,
		Workers:         cfg.Audit.Workers,
		ShutdownTimeout: time.Duration(cfg.Audit.ShutdownTimeoutSecs) * time.Second,
	}, sinks, log)

	srv := server.New(cfg, log, prov, emitter)

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("inkwell gateway running",
			zap.String("addr", cfg.Server.Addr),
			zap.String("provider", cfg.Provider.Type),
			zap.String("model", cfg.Provider.Model))
		errCh <- httpSrv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stop:
		log.Info("shutting down")
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}
	emitter.Close(shutdownCtx)

	m := emitter.MetricsSnapshot()
	log.Info("audit emitter stopped",
		zap.Uint64("enqueued", m.Enqueued),
		zap.Uint64("dropped", m.Dropped))
	return nil
}

func buildLogger(mode string) (*zap.Logger, error) {
	if mode == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func buildProvider(cfg *config.Config) (provider.Provider, error) {
	switch cfg.Provider.Type {
	case "fake":
		return provider.NewFake(`{"subject":"Generated Email","subject_variants":[],"body":"This is a canned reply from the fake provider."}`), nil
	case "openai":
		key := cfg.Provider.ResolveAPIKey()
		if key == "" {
			return nil, fmt.Errorf("provider api key not found (checked env %s)", cfg.Provider.APIKeyEnv)
		}
		return provider.NewOpenAI(provider.OpenAIOptions{
			BaseURL:          cfg.Provider.BaseURL,
			APIKey:           key,
			Model:            cfg.Provider.Model,
			MaxTokens:        cfg.Provider.MaxTokens,
			MaxResponseBytes: cfg.Provider.MaxResponseBytes,
			Timeout:          time.Duration(cfg.Provider.TimeoutSecs) * time.Second,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", cfg.Provider.Type)
	}
}

func buildSinks(cfg *config.Config, log *zap.Logger) ([]audit.Sink, error) {
	sinks := make([]audit.Sink, 0, len(cfg.Audit.Sinks))
	for _, sc := range cfg.Audit.Sinks {
		switch sc.Type {
		case "log":
			sinks = append(sinks, audit.NewZapSink(log))
		case "file_jsonl":
			s, err := audit.NewFileSink(sc.Path)
			if err != nil {
				return nil, fmt.Errorf("file sink %q: %w", sc.Path, err)
			}
			sinks = append(sinks, s)
		case "webhook":
			s, err := audit.NewWebhookSink(sc.URL, time.Duration(sc.TimeoutSecs)*time.Second)
			if err != nil {
				return nil, fmt.Errorf("webhook sink %q: %w", sc.URL, err)
			}
			sinks = append(sinks, s)
		default:
			return nil, fmt.Errorf("unknown audit sink type %q", sc.Type)
		}
	}
	return sinks, nil
}

// Package server exposes the drafting engine over HTTP. All domain logic
// lives in the pure packages; handlers only decode, validate, call the
// provider, and encode.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/inkwell-ai/inkwell/internal/audit"
	"github.com/inkwell-ai/inkwell/internal/config"
	"github.com/inkwell-ai/inkwell/internal/email"
	"github.com/inkwell-ai/inkwell/internal/provider"
	"github.com/inkwell-ai/inkwell/internal/risk"
)

// Server wires the HTTP routes to the drafting engine.
type Server struct {
	router       *mux.Router
	cfg          *config.Config
	log          *zap.Logger
	provider     provider.Provider
	providerName string
	audit        *audit.Emitter
}

// New builds a server with all routes registered. The provider is
// constructed once by the caller and held here; the core packages stay pure.
func New(cfg *config.Config, log *zap.Logger, prov provider.Provider, emitter *audit.Emitter) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		cfg:          cfg,
		log:          log,
		provider:     prov,
		providerName: cfg.Provider.Type,
		audit:        emitter,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	api.HandleFunc("/score", s.handleScore).Methods(http.MethodPost)
	api.HandleFunc("/presets", s.handlePresets).Methods(http.MethodGet)

	s.router = r
	return s
}

// Handler exposes the router; the caller owns the http.Server lifecycle.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxRequestBodyBytes)

	// Decoding over the default request gives absent fields their documented
	// defaults; whatever the client did send is still validated strictly.
	req := email.DefaultRequest()
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "invalid_request_error")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body", "invalid_request_error")
		return
	}

	if err := req.Validate(); err != nil {
		s.emit(audit.BuildParams{
			Preset:   string(req.Preset),
			Decision: audit.DecisionRejectedInput,
		})
		writeError(w, http.StatusBadRequest, err.Error(), "invalid_request_error")
		return
	}

	prompt := email.Compile(req)

	ctx := r.Context()
	if timeout := time.Duration(s.cfg.Server.UpstreamTimeoutSecs) * time.Second; timeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.provider.Generate(ctx, prompt)
	latency := time.Since(start)
	if err != nil {
		s.log.Warn("provider call failed", zap.String("provider", s.providerName), zap.Error(err))
		s.emit(audit.BuildParams{
			Preset:   string(req.Preset),
			Decision: audit.DecisionErrorProvider,
			Latency:  latency,
		})
		writeError(w, http.StatusBadGateway, "generation service unavailable", "service_unavailable")
		return
	}

	result := email.ParseReply(raw)

	s.emit(audit.BuildParams{
		Preset:       string(req.Preset),
		Decision:     audit.DecisionAllow,
		RiskScore:    result.RiskScore,
		RiskWarnings: result.RiskWarnings,
		Subject:      result.Subject,
		Body:         result.Body,
		Latency:      latency,
	})

	writeJSON(w, http.StatusOK, result)
}

type scoreRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxRequestBodyBytes)

	var req scoreRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "invalid_request_error")
		return
	}

	writeJSON(w, http.StatusOK, risk.Score(req.Subject, req.Body))
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, email.AllOptions())
}

func (s *Server) emit(p audit.BuildParams) {
	if s.audit == nil {
		return
	}
	p.Provider = s.providerName
	p.Model = s.cfg.Provider.Model
	p.PreviewLevel = s.cfg.Logging.PreviewLevel
	s.audit.Emit(audit.BuildEvent(p))
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func writeError(w http.ResponseWriter, status int, message, typ string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error: errorDetail{Message: message, Type: typ},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

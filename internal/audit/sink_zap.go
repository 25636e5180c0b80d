package audit

import (
	"context"

	"go.uber.org/zap"
)

// ZapSink writes events to the process logger, one structured line each.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapSink{log: log}
}

func (s *ZapSink) Name() string { return "log" }

func (s *ZapSink) Deliver(_ context.Context, ev *Event) error {
	if ev == nil {
		return nil
	}
	s.log.Info("generation",
		zap.String("event_id", ev.EventID),
		zap.String("preset", ev.Preset),
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("decision", string(ev.Decision)),
		zap.Int("risk_score", ev.RiskScore),
		zap.Strings("risk_warnings", ev.RiskWarnings),
		zap.Float64("latency_ms", ev.LatencyMs),
	)
	return nil
}

func (s *ZapSink) Close(_ context.Context) error { return nil }

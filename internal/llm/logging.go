package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingProvider is a decorator that records every LLM round-trip.
type LoggingProvider struct {
	inner Provider
	log   zerolog.Logger
}

// WithLogging wraps a Provider with structured logging.
func WithLogging(p Provider, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := l.log.Debug().
		Str("model", l.inner.ModelID()).
		Dur("latency", time.Since(start))
	if req.Schema != nil {
		ev = ev.Str("schema", req.Schema.Name)
	}
	if resp != nil {
		ev = ev.
			Int("input_tokens", resp.Usage.InputTokens).
			Int("output_tokens", resp.Usage.OutputTokens)
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("llm generate")

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

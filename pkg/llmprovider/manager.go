package llmprovider

import (
	"context"
	"fmt"
	"time"

	"finmail-classifier/pkg/log"
)

// Manager orchestrates model selection, fallback, and retry logic
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// Config defines configuration for the Manager
type Config struct {
	Models          []string // candidate models, highest priority first
	MaxAttempts     int
	BaseDelay       time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the whole fallback chain
}

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// NewManager creates a new Manager for the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	cfg := *config
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	cfg.Models = append([]string(nil), config.Models...)

	return &Manager{
		provider: provider,
		config:   &cfg,
		logger:   logger,
		sleep:    sleepContext,
	}
}

// Models returns the candidate models in priority order.
func (m *Manager) Models() []string {
	return append([]string(nil), m.config.Models...)
}

// Complete runs req against the candidate models until one produces output or
// the attempt budget is spent. It fails with *RateLimitError, *AllModelsFailedError,
// or the context error when ctx is done first.
func (m *Manager) Complete(ctx context.Context, req *Request) (*Response, error) {
	if len(m.config.Models) == 0 {
		return nil, ErrNoModelsConfigured
	}
	if req == nil || req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	policy := Policy{
		NumModels:   len(m.config.Models),
		MaxAttempts: m.config.MaxAttempts,
		BaseDelay:   m.config.BaseDelay,
	}
	state := policy.Start()

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("completion aborted on attempt %d/%d: %w", state.Attempt, m.config.MaxAttempts, err)
		}

		model := m.config.Models[state.ModelIndex]
		m.logger.Infof(ctx, "Trying model %s (attempt %d/%d)", model, state.Attempt, m.config.MaxAttempts)

		resp, outcome := m.call(ctx, model, req)
		if outcome.Err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("completion aborted on attempt %d/%d: %w", state.Attempt, m.config.MaxAttempts, ctx.Err())
		}

		var action Action
		attempt := state.Attempt
		state, action = policy.Next(state, outcome)

		switch action.Kind {
		case ActionReturn:
			m.logSuccess(ctx, model, resp)
			return resp, nil

		case ActionTryNextModel:
			m.logger.Warnf(ctx, "Model %s unavailable: %s", model, truncate(outcome.Err.Error(), 100))

		case ActionSleepAndRetry:
			reason := state.LastKind.String()
			if state.LastKind == KindRateLimited {
				m.logger.Warnf(ctx, "Rate limited (attempt %d/%d). Waiting %s...", attempt, m.config.MaxAttempts, action.Delay)
			} else {
				m.logger.Warnf(ctx, "Attempt %d/%d failed: %s. Retrying in %s...",
					attempt, m.config.MaxAttempts, truncate(state.LastErr.Error(), 150), action.Delay)
			}
			BackoffSeconds.WithLabelValues(reason).Add(action.Delay.Seconds())
			if err := m.sleep(ctx, action.Delay); err != nil {
				return nil, fmt.Errorf("completion aborted while backing off: %w", err)
			}

		case ActionFail:
			m.logFailure(ctx, state, action.Err)
			return nil, action.Err
		}
	}
}

func (m *Manager) call(ctx context.Context, model string, req *Request) (*Response, Outcome) {
	start := time.Now()
	resp, err := m.provider.Generate(ctx, model, req)
	if err == nil && resp == nil {
		err = &ProviderError{Provider: m.provider.Name(), Model: model, Err: ErrEmptyResponse}
	}

	outcome := Outcome{Model: model, Err: err}
	if err != nil {
		outcome.Kind = KindOf(err)
	} else if resp.ModelName == "" {
		resp.ModelName = model
	}

	CallsTotal.WithLabelValues(model, outcomeLabel(outcome)).Inc()
	CallDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())

	return resp, outcome
}

// logSuccess logs successful generation with metrics
func (m *Manager) logSuccess(ctx context.Context, model string, resp *Response) {
	kv := []any{"provider", m.provider.Name(), "model", model}
	if resp.Usage != nil {
		kv = append(kv, "input_tokens", resp.Usage.InputTokens, "output_tokens", resp.Usage.OutputTokens)
	}
	m.logger.Info(ctx, append([]any{"LLM generation successful"}, kv...)...)
}

// logFailure logs the terminal failure of a Complete call
func (m *Manager) logFailure(ctx context.Context, s State, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", m.provider.Name(),
		"last_model", s.LastModel,
		"attempts", s.Attempt,
		"total_backoff", s.TotalDelay.String(),
		"error", err.Error(),
	)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

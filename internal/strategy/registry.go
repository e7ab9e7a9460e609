// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/merge"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/metrics"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
)

const defaultMaxParallel = 4

// Registration is one registered dialect. Registrations are immutable.
type Registration[T any] struct {
	Strategy Strategy[T]
	Priority int
	Name     string
}

// Config configures a Registry.
type Config struct {
	// Kind labels logs and metrics (e.g. "dataset").
	Kind string

	// MaxParallel bounds concurrent strategy runs per call (default 4).
	MaxParallel int

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Registry holds the dialect strategies for one resource kind. Strategies
// are registered during setup; RunAll may be called concurrently with
// itself and with Register.
type Registry[T any] struct {
	mu            sync.RWMutex
	registrations []Registration[T]

	kind        string
	maxParallel int
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// NewRegistry returns an empty registry.
func NewRegistry[T any](cfg Config) *Registry[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxParallel := cfg.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}
	return &Registry[T]{
		kind:        cfg.Kind,
		maxParallel: maxParallel,
		logger:      logger.With(slog.String("kind", cfg.Kind)),
		metrics:     cfg.Metrics,
	}
}

// Register adds a strategy. Priorities need not be unique; equal
// priorities keep registration order.
func (r *Registry[T]) Register(s Strategy[T], priority int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations = append(r.registrations, Registration[T]{Strategy: s, Priority: priority, Name: name})
}

// Count returns the number of registered strategies.
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registrations)
}

// Registrations returns a copy of the registrations in registration order.
func (r *Registry[T]) Registrations() []Registration[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Registration[T], len(r.registrations))
	copy(out, r.registrations)
	return out
}

// Kind returns the resource kind label.
func (r *Registry[T]) Kind() string {
	return r.kind
}

// RunAll runs every strategy's Parse against subject and returns the
// successful records ordered by descending priority.
func (r *Registry[T]) RunAll(ctx context.Context, g *rdfgraph.Graph, subject rdfgraph.Term, externalID string) ([]*T, error) {
	return r.run(ctx, externalID, func(s Strategy[T]) (*T, error) {
		return s.Parse(g, subject, externalID)
	})
}

// RunAllResource is RunAll without identity fields, for callers that
// already hold the subject and have no catalog record.
func (r *Registry[T]) RunAllResource(ctx context.Context, g *rdfgraph.Graph, subject rdfgraph.Term) ([]*T, error) {
	return r.run(ctx, subject.Value, func(s Strategy[T]) (*T, error) {
		return s.ParseResource(g, subject)
	})
}

type outcome[T any] struct {
	reg Registration[T]
	rec *T
}

func (r *Registry[T]) run(ctx context.Context, id string, parse func(Strategy[T]) (*T, error)) ([]*T, error) {
	regs := r.Registrations()
	outcomes := make([]outcome[T], len(regs))

	var eg errgroup.Group
	eg.SetLimit(r.maxParallel)
	for i, reg := range regs {
		i, reg := i, reg
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			outcomes[i] = outcome[T]{reg: reg, rec: r.invoke(reg, id, parse)}
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	succeeded := outcomes[:0]
	for _, o := range outcomes {
		if o.rec != nil {
			succeeded = append(succeeded, o)
		}
	}
	if len(succeeded) == 0 {
		return nil, fmt.Errorf("%w: %s %s (%d registered)", ErrNoStrategySucceeded, r.kind, id, len(regs))
	}

	sort.SliceStable(succeeded, func(i, j int) bool {
		return succeeded[i].reg.Priority > succeeded[j].reg.Priority
	})

	records := make([]*T, len(succeeded))
	for i, o := range succeeded {
		records[i] = o.rec
	}
	return records, nil
}

// invoke runs one strategy in isolation. Any failure, including a panic,
// yields nil.
func (r *Registry[T]) invoke(reg Registration[T], id string, parse func(Strategy[T]) (*T, error)) (rec *T) {
	logger := r.logger.With(slog.String("strategy", reg.Name), slog.String("id", id))

	defer func() {
		if p := recover(); p != nil {
			logger.Warn("Strategy panicked", slog.Any("panic", p))
			r.metrics.StrategyRun(r.kind, reg.Name, metrics.OutcomeError)
			rec = nil
		}
	}()

	var err error
	rec, err = parse(reg.Strategy)
	switch {
	case errors.Is(err, ErrNotApplicable):
		logger.Debug("Strategy not applicable", slog.String("reason", err.Error()))
		r.metrics.StrategyRun(r.kind, reg.Name, metrics.OutcomeNotApplicable)
		return nil
	case err != nil:
		logger.Warn("Strategy failed", slog.Any("error", err))
		r.metrics.StrategyRun(r.kind, reg.Name, metrics.OutcomeError)
		return nil
	case !merge.HasContent(rec):
		logger.Debug("Strategy produced no content")
		r.metrics.StrategyRun(r.kind, reg.Name, metrics.OutcomeNotApplicable)
		return nil
	}

	r.metrics.StrategyRun(r.kind, reg.Name, metrics.OutcomeSuccess)
	return rec
}

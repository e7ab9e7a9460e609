// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the catalog-record lookup, the dialect
// strategies and the merger into one resolve-and-merge call per resource
// kind.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/harvest"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/merge"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/metrics"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/strategy"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

// Resolver is the kind-independent view of a Parser, used by callers that
// pick the kind at runtime.
type Resolver interface {
	Kind() types.Kind
	Resolve(ctx context.Context, g *rdfgraph.Graph, externalID string) (any, error)
	Strategies() []StrategyInfo
}

// StrategyInfo describes one registered dialect.
type StrategyInfo struct {
	Name     string `json:"name" yaml:"name"`
	Priority int    `json:"priority" yaml:"priority"`
}

// Parser resolves and merges records of type T.
type Parser[T any] struct {
	kind            types.Kind
	acceptableTypes []string
	locator         *harvest.Locator
	registry        *strategy.Registry[T]
	logger          *slog.Logger
	metrics         *metrics.Metrics
}

// Config holds the collaborators of a Parser.
type Config[T any] struct {
	Kind            types.Kind
	AcceptableTypes []string
	Locator         *harvest.Locator
	Registry        *strategy.Registry[T]
	Logger          *slog.Logger
	Metrics         *metrics.Metrics
}

// New returns a Parser. The registry must be fully populated before the
// first call.
func New[T any](cfg Config[T]) *Parser[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser[T]{
		kind:            cfg.Kind,
		acceptableTypes: cfg.AcceptableTypes,
		locator:         cfg.Locator,
		registry:        cfg.Registry,
		logger:          logger.With(slog.String("kind", string(cfg.Kind))),
		metrics:         cfg.Metrics,
	}
}

// Kind returns the resource kind this parser produces.
func (p *Parser[T]) Kind() types.Kind {
	return p.kind
}

// AcceptableTypes returns the rdf:type IRIs a primary topic may carry.
func (p *Parser[T]) AcceptableTypes() []string {
	out := make([]string, len(p.acceptableTypes))
	copy(out, p.acceptableTypes)
	return out
}

// Registry returns the strategy registry.
func (p *Parser[T]) Registry() *strategy.Registry[T] {
	return p.registry
}

// Strategies lists the registered dialects in registration order.
func (p *Parser[T]) Strategies() []StrategyInfo {
	regs := p.registry.Registrations()
	out := make([]StrategyInfo, len(regs))
	for i, r := range regs {
		out[i] = StrategyInfo{Name: r.Name, Priority: r.Priority}
	}
	return out
}

// ResolveAndMerge finds the resource the harvester recorded for
// externalID, runs every dialect against it and merges the results.
func (p *Parser[T]) ResolveAndMerge(ctx context.Context, g *rdfgraph.Graph, externalID string) (*T, error) {
	start := time.Now()
	rec, err := p.resolveAndMerge(ctx, g, externalID)
	p.metrics.Parse(string(p.kind), err == nil, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("parsing %s %s: %w", p.kind, externalID, err)
	}
	return rec, nil
}

func (p *Parser[T]) resolveAndMerge(ctx context.Context, g *rdfgraph.Graph, externalID string) (*T, error) {
	subject, err := p.locator.Locate(g, externalID, p.acceptableTypes)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Resolved primary topic",
		slog.String("id", externalID),
		slog.String("subject", subject.Value))

	partials, err := p.registry.RunAll(ctx, g, subject, externalID)
	if err != nil {
		return nil, err
	}
	return merge.Merge(partials)
}

// ParseResource runs every dialect against subject and merges the results
// without looking up a catalog record. Identity and harvest fields stay
// empty.
func (p *Parser[T]) ParseResource(ctx context.Context, g *rdfgraph.Graph, subject rdfgraph.Term) (*T, error) {
	partials, err := p.registry.RunAllResource(ctx, g, subject)
	if err != nil {
		return nil, fmt.Errorf("parsing %s %s: %w", p.kind, subject.Value, err)
	}
	return merge.Merge(partials)
}

// Resolve implements Resolver.
func (p *Parser[T]) Resolve(ctx context.Context, g *rdfgraph.Graph, externalID string) (any, error) {
	rec, err := p.ResolveAndMerge(ctx, g, externalID)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package strategy runs every registered dialect parser for a resource kind
// against one subject and returns the successful partial records ordered by
// priority.
//
// A dialect that does not recognise its input returns an error wrapping
// ErrNotApplicable. Any other error, or a panic, is a fault in that
// dialect. Either way the dialect is left out of the result for that call
// and the remaining dialects still run.
package strategy

import (
	"errors"
	"fmt"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/merge"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
)

var (
	// ErrNotApplicable marks a dialect that does not match the input.
	ErrNotApplicable = errors.New("dialect not applicable")

	// ErrNoStrategySucceeded is returned by RunAll when every dialect was
	// excluded.
	ErrNoStrategySucceeded = errors.New("no strategy succeeded")
)

// Strategy parses one schema dialect into a partial record of type T.
type Strategy[T any] interface {
	// Parse reads subject and fills the identity and harvest fields for
	// externalID.
	Parse(g *rdfgraph.Graph, subject rdfgraph.Term, externalID string) (*T, error)

	// ParseResource reads subject without identity or harvest fields.
	ParseResource(g *rdfgraph.Graph, subject rdfgraph.Term) (*T, error)
}

// ParseFunc reads one dialect from a subject.
type ParseFunc[T any] func(g *rdfgraph.Graph, subject rdfgraph.Term) (*T, error)

// IdentifyFunc fills identity and harvest fields of a parsed record.
type IdentifyFunc[T any] func(rec *T, g *rdfgraph.Graph, subject rdfgraph.Term, externalID string)

// Dialect adapts a ParseFunc to Strategy.
type Dialect[T any] struct {
	ParseFunc    ParseFunc[T]
	IdentifyFunc IdentifyFunc[T]
}

// ParseResource implements Strategy.
func (d Dialect[T]) ParseResource(g *rdfgraph.Graph, subject rdfgraph.Term) (*T, error) {
	rec, err := d.ParseFunc(g, subject)
	if err != nil {
		return nil, err
	}
	if !merge.HasContent(rec) {
		return nil, fmt.Errorf("%w: no content for %s", ErrNotApplicable, subject)
	}
	return rec, nil
}

// Parse implements Strategy. Identity is only added to records that carry
// content of their own.
func (d Dialect[T]) Parse(g *rdfgraph.Graph, subject rdfgraph.Term, externalID string) (*T, error) {
	rec, err := d.ParseResource(g, subject)
	if err != nil {
		return nil, err
	}
	if d.IdentifyFunc != nil {
		d.IdentifyFunc(rec, g, subject, externalID)
	}
	return rec, nil
}

// NotApplicable returns an error wrapping ErrNotApplicable.
func NotApplicable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotApplicable, fmt.Sprintf(format, args...))
}

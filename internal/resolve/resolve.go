// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve walks structure embedded in a harvested graph: the
// catalog that lists a resource, and the backward-linked list of datasets
// that make up a dataset series. Both walks tolerate malformed input.
package resolve

import (
	"log/slog"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/vocab"
)

// Resolver carries the logger used to report ambiguous input.
type Resolver struct {
	logger *slog.Logger
}

// New returns a Resolver. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// FindContainer returns the resource of containerType that lists member
// through memberPredicate. Containers without an IRI are ignored. With
// several candidates it logs a warning and returns the first one found;
// which one that is may change between graphs.
func (r *Resolver) FindContainer(g *rdfgraph.Graph, containerType, memberPredicate string, member rdfgraph.Term) (rdfgraph.Term, bool) {
	var candidates []rdfgraph.Term
	for _, c := range g.SubjectsWith(memberPredicate, member) {
		if c.IsIRI() && g.HasType(c, containerType) {
			candidates = append(candidates, c)
		}
	}

	switch len(candidates) {
	case 0:
		return rdfgraph.Term{}, false
	case 1:
		return candidates[0], true
	default:
		uris := make([]string, len(candidates))
		for i, c := range candidates {
			uris[i] = c.Value
		}
		r.logger.Warn("Resource listed by several containers, picking one",
			slog.String("member", member.Value),
			slog.String("container_type", containerType),
			slog.Any("candidates", uris),
			slog.String("picked", candidates[0].Value))
		return candidates[0], true
	}
}

// SeriesChain walks a dataset series from its dcat:last member through
// dcat:prev links and returns the member IRIs newest first. The walk stops
// at a member without a predecessor, at a blank node, or when it would
// revisit a member. It returns nil when the series has no last member.
func SeriesChain(g *rdfgraph.Graph, series rdfgraph.Term) []string {
	var chain []string
	visited := make(map[rdfgraph.Term]bool)

	next, ok := firstIRI(g.ValuesOf(series, vocab.DCATLast))
	for ok && !visited[next] {
		visited[next] = true
		chain = append(chain, next.Value)
		next, ok = firstIRI(g.ValuesOf(next, vocab.DCATPrev))
	}
	return chain
}

func firstIRI(terms []rdfgraph.Term) (rdfgraph.Term, bool) {
	for _, t := range terms {
		if t.IsIRI() {
			return t, true
		}
	}
	return rdfgraph.Term{}, false
}

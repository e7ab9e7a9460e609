// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdfgraph

const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Graph is an indexed, read-only set of triples. Lookups return values in
// the order the triples were added so that parsing is deterministic.
// A Graph is safe for concurrent readers once built.
type Graph struct {
	triples  []Triple
	set      map[Triple]struct{}
	outgoing map[Term]map[string][]Term
	incoming map[string]map[Term][]Term
}

// Builder accumulates triples and produces a Graph. Duplicate statements
// are dropped.
type Builder struct {
	g *Graph
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{g: &Graph{
		set:      make(map[Triple]struct{}),
		outgoing: make(map[Term]map[string][]Term),
		incoming: make(map[string]map[Term][]Term),
	}}
}

// Add appends one statement. It returns the builder for chaining.
func (b *Builder) Add(subject Term, predicate string, object Term) *Builder {
	t := Triple{Subject: subject, Predicate: predicate, Object: object}
	if _, ok := b.g.set[t]; ok {
		return b
	}
	b.g.set[t] = struct{}{}
	b.g.triples = append(b.g.triples, t)

	byPred, ok := b.g.outgoing[subject]
	if !ok {
		byPred = make(map[string][]Term)
		b.g.outgoing[subject] = byPred
	}
	byPred[predicate] = append(byPred[predicate], object)

	byObj, ok := b.g.incoming[predicate]
	if !ok {
		byObj = make(map[Term][]Term)
		b.g.incoming[predicate] = byObj
	}
	byObj[object] = append(byObj[object], subject)
	return b
}

// Graph returns the built graph. The builder must not be used afterwards.
func (b *Builder) Graph() *Graph {
	g := b.g
	b.g = nil
	return g
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns a copy of all statements in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// ValuesOf returns the objects of (subject, predicate, ?).
func (g *Graph) ValuesOf(subject Term, predicate string) []Term {
	vals := g.outgoing[subject][predicate]
	if len(vals) == 0 {
		return nil
	}
	out := make([]Term, len(vals))
	copy(out, vals)
	return out
}

// TypesOf returns the rdf:type values of subject.
func (g *Graph) TypesOf(subject Term) []Term {
	return g.ValuesOf(subject, rdfType)
}

// HasType reports whether subject is declared with typeIRI.
func (g *Graph) HasType(subject Term, typeIRI string) bool {
	return g.Contains(subject, rdfType, IRI(typeIRI))
}

// Contains reports whether the statement (subject, predicate, object) exists.
func (g *Graph) Contains(subject Term, predicate string, object Term) bool {
	_, ok := g.set[Triple{Subject: subject, Predicate: predicate, Object: object}]
	return ok
}

// SubjectsWith returns the subjects of (?, predicate, object).
func (g *Graph) SubjectsWith(predicate string, object Term) []Term {
	subs := g.incoming[predicate][object]
	if len(subs) == 0 {
		return nil
	}
	out := make([]Term, len(subs))
	copy(out, subs)
	return out
}

// ResourcesOfType returns every subject declared with typeIRI.
func (g *Graph) ResourcesOfType(typeIRI string) []Term {
	return g.SubjectsWith(rdfType, IRI(typeIRI))
}

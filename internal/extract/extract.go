// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls single fields out of a graph: strings, localized
// bundles, references and small sub-records. Every helper returns nil when
// the graph has nothing usable for the requested property, and sub-record
// helpers never return an all-empty value.
package extract

import (
	"strings"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

func ptr[T any](v T) *T {
	return &v
}

// text returns the lexical value of a literal or IRI, or "" for blank nodes.
func text(t rdfgraph.Term) string {
	switch t.Kind {
	case rdfgraph.KindLiteral, rdfgraph.KindIRI:
		return strings.TrimSpace(t.Value)
	default:
		return ""
	}
}

// String returns the first non-empty literal or IRI value of subject,
// trying predicates in order.
func String(g *rdfgraph.Graph, subject rdfgraph.Term, predicates ...string) *string {
	for _, p := range predicates {
		for _, v := range g.ValuesOf(subject, p) {
			if s := text(v); s != "" {
				return ptr(s)
			}
		}
	}
	return nil
}

// Strings returns all distinct literal or IRI values of subject.
func Strings(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range g.ValuesOf(subject, predicate) {
		s := text(v)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// IRI returns the first IRI value of (subject, predicate).
func IRI(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) *string {
	for _, v := range g.ValuesOf(subject, predicate) {
		if v.IsIRI() && v.Value != "" {
			return ptr(v.Value)
		}
	}
	return nil
}

// IRIs returns all distinct IRI values of (subject, predicate).
func IRIs(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range g.ValuesOf(subject, predicate) {
		if !v.IsIRI() || v.Value == "" || seen[v.Value] {
			continue
		}
		seen[v.Value] = true
		out = append(out, v.Value)
	}
	return out
}

// Localized collects the literal values of (subject, predicate) into one
// bundle. Untagged literals count as Norwegian bokmål. When a language has
// several values the first one wins.
func Localized(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) *types.LocalizedStrings {
	var l types.LocalizedStrings
	for _, v := range g.ValuesOf(subject, predicate) {
		addLiteral(&l, v)
	}
	if l.IsEmpty() {
		return nil
	}
	return &l
}

// LocalizedList returns one bundle per literal value, as used for keywords
// and alternative labels where each value is a separate entry.
func LocalizedList(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) []types.LocalizedStrings {
	var out []types.LocalizedStrings
	for _, v := range g.ValuesOf(subject, predicate) {
		var l types.LocalizedStrings
		addLiteral(&l, v)
		if !l.IsEmpty() {
			out = append(out, l)
		}
	}
	return out
}

// LocalizedOf wraps a single literal in a bundle.
func LocalizedOf(v rdfgraph.Term) *types.LocalizedStrings {
	var l types.LocalizedStrings
	addLiteral(&l, v)
	if l.IsEmpty() {
		return nil
	}
	return &l
}

func addLiteral(l *types.LocalizedStrings, v rdfgraph.Term) {
	if !v.IsLiteral() {
		return
	}
	value := strings.TrimSpace(v.Value)
	lang := v.Lang
	if i := strings.IndexByte(lang, '-'); i > 0 {
		lang = lang[:i]
	}
	if lang == "" {
		lang = types.LangNB
	}
	l.Set(lang, value)
}

// Bool parses the first xsd:boolean-like literal of (subject, predicate).
func Bool(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) *bool {
	for _, v := range g.ValuesOf(subject, predicate) {
		if !v.IsLiteral() {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(v.Value)) {
		case "true", "1":
			return ptr(true)
		case "false", "0":
			return ptr(false)
		}
	}
	return nil
}

// Node returns the first IRI or blank node value of (subject, predicate).
func Node(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) (rdfgraph.Term, bool) {
	for _, v := range g.ValuesOf(subject, predicate) {
		if v.IsResource() {
			return v, true
		}
	}
	return rdfgraph.Term{}, false
}

// Nodes returns every IRI or blank node value of (subject, predicate).
func Nodes(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) []rdfgraph.Term {
	var out []rdfgraph.Term
	for _, v := range g.ValuesOf(subject, predicate) {
		if v.IsResource() {
			out = append(out, v)
		}
	}
	return out
}

// URIOf returns the IRI of a node, or nil for blank nodes.
func URIOf(node rdfgraph.Term) *string {
	if node.IsIRI() && node.Value != "" {
		return ptr(node.Value)
	}
	return nil
}

// LocalizedVia follows predicate to intermediate nodes and collects their
// inner literals into one bundle, as SKOS-XL labels require.
func LocalizedVia(g *rdfgraph.Graph, subject rdfgraph.Term, predicate, inner string) *types.LocalizedStrings {
	var l types.LocalizedStrings
	for _, node := range Nodes(g, subject, predicate) {
		for _, v := range g.ValuesOf(node, inner) {
			addLiteral(&l, v)
		}
	}
	if l.IsEmpty() {
		return nil
	}
	return &l
}

// LocalizedListVia is LocalizedVia producing one bundle per intermediate
// node.
func LocalizedListVia(g *rdfgraph.Graph, subject rdfgraph.Term, predicate, inner string) []types.LocalizedStrings {
	var out []types.LocalizedStrings
	for _, node := range Nodes(g, subject, predicate) {
		if l := Localized(g, node, inner); l != nil {
			out = append(out, *l)
		}
	}
	return out
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest finds the catalog record the harvester minted for an
// external id and resolves the resource that record is about.
package harvest

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/extract"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/vocab"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

var (
	// ErrNoRecord means no acceptable catalog record references the id.
	ErrNoRecord = errors.New("no acceptable catalog record")

	// ErrMultipleRecords means more than one acceptable catalog record
	// references the id. The locator never picks one.
	ErrMultipleRecords = errors.New("multiple catalog records")
)

// Locator resolves external ids to resource subjects.
type Locator struct {
	namespace string
	logger    *slog.Logger
}

// NewLocator returns a Locator that only trusts catalog records whose IRI
// starts with namespace. An empty namespace accepts every record.
func NewLocator(namespace string, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Locator{namespace: namespace, logger: logger}
}

// Namespace returns the configured record namespace.
func (l *Locator) Namespace() string {
	return l.namespace
}

// Locate returns the primary topic of the single catalog record minted by
// this service for externalID whose topic has one of acceptableTypes.
func (l *Locator) Locate(g *rdfgraph.Graph, externalID string, acceptableTypes []string) (rdfgraph.Term, error) {
	var topics []rdfgraph.Term
	for _, record := range l.records(g, externalID) {
		topic, reason := l.topicOf(g, record, acceptableTypes)
		if reason != "" {
			l.logger.Debug("Catalog record rejected",
				slog.String("record", record.Value),
				slog.String("id", externalID),
				slog.String("reason", reason))
			continue
		}
		topics = append(topics, topic)
	}

	switch len(topics) {
	case 0:
		return rdfgraph.Term{}, fmt.Errorf("%w for id %s", ErrNoRecord, externalID)
	case 1:
		return topics[0], nil
	default:
		uris := make([]string, len(topics))
		for i, t := range topics {
			uris[i] = t.Value
		}
		return rdfgraph.Term{}, fmt.Errorf("%w for id %s: %s", ErrMultipleRecords, externalID, strings.Join(uris, ", "))
	}
}

// records returns catalog records carrying externalID as dct:identifier and
// sitting inside the service namespace.
func (l *Locator) records(g *rdfgraph.Graph, externalID string) []rdfgraph.Term {
	var out []rdfgraph.Term
	for _, r := range g.ResourcesOfType(vocab.DCATCatalogRecord) {
		if !r.IsIRI() || !strings.HasPrefix(r.Value, l.namespace) {
			continue
		}
		if hasIdentifier(g, r, externalID) {
			out = append(out, r)
		}
	}
	return out
}

func hasIdentifier(g *rdfgraph.Graph, record rdfgraph.Term, externalID string) bool {
	for _, v := range g.ValuesOf(record, vocab.DCTIdentifier) {
		if v.IsLiteral() && strings.TrimSpace(v.Value) == externalID {
			return true
		}
	}
	return false
}

// topicOf resolves the record's single primary topic and checks its type.
// A non-empty reason explains why the record was rejected.
func (l *Locator) topicOf(g *rdfgraph.Graph, record rdfgraph.Term, acceptableTypes []string) (rdfgraph.Term, string) {
	topics := g.ValuesOf(record, vocab.FOAFPrimaryTopic)
	switch {
	case len(topics) == 0:
		return rdfgraph.Term{}, "missing primary topic"
	case len(topics) > 1:
		return rdfgraph.Term{}, "ambiguous primary topic"
	case !topics[0].IsResource():
		return rdfgraph.Term{}, "primary topic is a literal"
	}

	topic := topics[0]
	for _, typ := range acceptableTypes {
		if g.HasType(topic, typ) {
			return topic, ""
		}
	}
	return rdfgraph.Term{}, "primary topic type not accepted"
}

// Metadata reads first-harvested and changed dates from the catalog record
// that carries externalID and points at subject. It returns nil when no
// such record has either date.
func (l *Locator) Metadata(g *rdfgraph.Graph, subject rdfgraph.Term, externalID string) *types.HarvestMetadata {
	for _, record := range l.records(g, externalID) {
		if !g.Contains(record, vocab.FOAFPrimaryTopic, subject) {
			continue
		}
		meta := types.HarvestMetadata{
			FirstHarvested: extract.String(g, record, vocab.DCTIssued),
			Changed:        extract.String(g, record, vocab.DCTModified),
		}
		if meta != (types.HarvestMetadata{}) {
			return &meta
		}
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package concept parses SKOS concepts into types.Concept records.
//
// SKOS-AP-NO 2 (priority 100) uses plain SKOS labels and euvoc
// definitions, status and validity. SKOS-AP-NO 1 (priority 50) uses SKOS-XL
// labels and skosno definitions, and has no status or concept relations.
package concept

import (
	"log/slog"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/extract"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/harvest"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/metrics"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/pipeline"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/resolve"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/strategy"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/vocab"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

const (
	StrategyV2 = "skos-ap-no-2"
	StrategyV1 = "skos-ap-no-1"

	PriorityV2 = 100
	PriorityV1 = 50
)

var AcceptableTypes = []string{vocab.SKOSConcept}

// New returns the concept parser with both dialects registered.
func New(cfg types.ParserConfig, logger *slog.Logger, m *metrics.Metrics) *pipeline.Parser[types.Concept] {
	locator := harvest.NewLocator(cfg.Namespace, logger)
	d := &dialects{resolver: resolve.New(logger)}
	identify := func(rec *types.Concept, g *rdfgraph.Graph, subject rdfgraph.Term, id string) {
		rec.ID = &id
		rec.URI = extract.URIOf(subject)
		rec.Harvest = locator.Metadata(g, subject, id)
	}

	reg := strategy.NewRegistry[types.Concept](strategy.Config{
		Kind:        string(types.KindConcept),
		MaxParallel: cfg.MaxParallel,
		Logger:      logger,
		Metrics:     m,
	})
	reg.Register(strategy.Dialect[types.Concept]{ParseFunc: d.parseV2, IdentifyFunc: identify}, PriorityV2, StrategyV2)
	reg.Register(strategy.Dialect[types.Concept]{ParseFunc: d.parseV1, IdentifyFunc: identify}, PriorityV1, StrategyV1)

	return pipeline.New(pipeline.Config[types.Concept]{
		Kind:            types.KindConcept,
		AcceptableTypes: AcceptableTypes,
		Locator:         locator,
		Registry:        reg,
		Logger:          logger,
		Metrics:         m,
	})
}

type dialects struct {
	resolver *resolve.Resolver
}

func (d *dialects) parseV2(g *rdfgraph.Graph, s rdfgraph.Term) (*types.Concept, error) {
	if !g.HasType(s, vocab.SKOSConcept) {
		return nil, strategy.NotApplicable("%s is not a skos:Concept", s)
	}

	c := d.common(g, s)
	c.PrefLabel = extract.Localized(g, s, vocab.SKOSPrefLabel)
	c.AltLabel = extract.LocalizedList(g, s, vocab.SKOSAltLabel)
	c.HiddenLabel = extract.LocalizedList(g, s, vocab.SKOSHiddenLabel)
	if node, ok := extract.Node(g, s, vocab.EUVOCXLDefinition); ok {
		c.Definition = definitionAt(g, node, vocab.RDFValue)
	}
	c.Status = extract.IRI(g, s, vocab.EUVOCStatus)
	c.ValidFromIncluded = extract.String(g, s, vocab.EUVOCStartDate)
	c.ValidToIncluded = extract.String(g, s, vocab.EUVOCEndDate)
	c.Created = extract.String(g, s, vocab.DCTCreated)
	c.Related = extract.IRIs(g, s, vocab.SKOSRelated)
	c.Replaces = extract.IRIs(g, s, vocab.DCTReplaces)
	c.IsReplacedBy = extract.IRIs(g, s, vocab.DCTIsReplacedBy)
	return c, nil
}

func (d *dialects) parseV1(g *rdfgraph.Graph, s rdfgraph.Term) (*types.Concept, error) {
	if !g.HasType(s, vocab.SKOSConcept) {
		return nil, strategy.NotApplicable("%s is not a skos:Concept", s)
	}

	c := d.common(g, s)
	c.PrefLabel = extract.LocalizedVia(g, s, vocab.SKOSXLPrefLabel, vocab.SKOSXLLiteralForm)
	c.AltLabel = extract.LocalizedListVia(g, s, vocab.SKOSXLAltLabel, vocab.SKOSXLLiteralForm)
	c.HiddenLabel = extract.LocalizedListVia(g, s, vocab.SKOSXLHiddenLabel, vocab.SKOSXLLiteralForm)
	for _, p := range []string{vocab.SKOSNODefinisjon, vocab.SKOSNOBetydningsbeskrivelse} {
		if node, ok := extract.Node(g, s, p); ok {
			if c.Definition = definitionAt(g, node, vocab.RDFSLabel); c.Definition != nil {
				break
			}
		}
	}
	if periods := extract.PeriodsOfTime(g, s); len(periods) > 0 {
		c.ValidFromIncluded = periods[0].StartDate
		c.ValidToIncluded = periods[0].EndDate
	}
	return c, nil
}

// common reads what both profiles express the same way.
func (d *dialects) common(g *rdfgraph.Graph, s rdfgraph.Term) *types.Concept {
	c := &types.Concept{
		Identifier:   extract.String(g, s, vocab.DCTIdentifier),
		Publisher:    extract.Organization(g, s, vocab.DCTPublisher),
		ContactPoint: extract.ContactPoints(g, s),
		Example:      extract.Localized(g, s, vocab.SKOSExample),
		Subject:      extract.Localized(g, s, vocab.DCTSubject),
		Modified:     extract.String(g, s, vocab.DCTModified),
		SeeAlso:      extract.IRIs(g, s, vocab.RDFSSeeAlso),
	}
	if col, ok := d.resolver.FindContainer(g, vocab.SKOSCollection, vocab.SKOSMember, s); ok {
		c.Collection = extract.Catalog(g, col)
	}
	return c
}

// definitionAt reads a definition node whose text sits under textPredicate.
func definitionAt(g *rdfgraph.Graph, node rdfgraph.Term, textPredicate string) *types.Definition {
	def := types.Definition{
		Text:               extract.Localized(g, node, textPredicate),
		Remark:             extract.Localized(g, node, vocab.SKOSScopeNote),
		SourceRelationship: extract.String(g, node, vocab.SKOSNOForholdTilKilde),
		Sources:            sources(g, node),
	}
	if def.Text == nil && def.Remark == nil && def.SourceRelationship == nil && len(def.Sources) == 0 {
		return nil
	}
	return &def
}

// sources reads dct:source values: IRIs, plain literals, or nodes with an
// rdfs:label and an rdfs:seeAlso link.
func sources(g *rdfgraph.Graph, node rdfgraph.Term) []types.DefinitionSource {
	var out []types.DefinitionSource
	for _, v := range g.ValuesOf(node, vocab.DCTSource) {
		var src types.DefinitionSource
		switch {
		case v.IsIRI():
			src.URI = extract.URIOf(v)
		case v.IsLiteral():
			src.Text = extract.LocalizedOf(v)
		default:
			src.URI = extract.IRI(g, v, vocab.RDFSSeeAlso)
			src.Text = extract.Localized(g, v, vocab.RDFSLabel)
		}
		if src.URI != nil || src.Text != nil {
			out = append(out, src)
		}
	}
	return out
}

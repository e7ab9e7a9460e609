// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package event parses CPSV business and life events into types.Event
// records.
package event

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
	StrategyCPSVAPNO1 = "cpsv-ap-no-1"
	StrategyCPSVAP3   = "cpsv-ap-3"

	PriorityCPSVAPNO1 = 100
	PriorityCPSVAP3   = 50
)

var AcceptableTypes = []string{vocab.CVBusinessEvent, vocab.CVLifeEvent}

// New returns the event parser with both dialects registered.
func New(cfg types.ParserConfig, logger *slog.Logger, m *metrics.Metrics) *pipeline.Parser[types.Event] {
	locator := harvest.NewLocator(cfg.Namespace, logger)
	d := &dialects{resolver: resolve.New(logger)}
	identify := func(rec *types.Event, g *rdfgraph.Graph, subject rdfgraph.Term, id string) {
		rec.ID = &id
		rec.URI = extract.URIOf(subject)
		rec.Harvest = locator.Metadata(g, subject, id)
	}

	reg := strategy.NewRegistry[types.Event](strategy.Config{
		Kind:        string(types.KindEvent),
		MaxParallel: cfg.MaxParallel,
		Logger:      logger,
		Metrics:     m,
	})
	reg.Register(strategy.Dialect[types.Event]{ParseFunc: d.parseCPSVAPNO1, IdentifyFunc: identify}, PriorityCPSVAPNO1, StrategyCPSVAPNO1)
	reg.Register(strategy.Dialect[types.Event]{ParseFunc: d.parseCPSVAP3, IdentifyFunc: identify}, PriorityCPSVAP3, StrategyCPSVAP3)

	return pipeline.New(pipeline.Config[types.Event]{
		Kind:            types.KindEvent,
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

// eventType maps the rdf:type of s to an EventType. Business events win
// when a subject claims both classes.
func eventType(g *rdfgraph.Graph, s rdfgraph.Term) (types.EventType, bool) {
	switch {
	case g.HasType(s, vocab.CVBusinessEvent):
		return types.EventBusiness, true
	case g.HasType(s, vocab.CVLifeEvent):
		return types.EventLife, true
	default:
		return "", false
	}
}

// parseCPSVAPNO1 reads the Norwegian profile, which links related
// services through dct:relation and classifies events with dct:type.
func (d *dialects) parseCPSVAPNO1(g *rdfgraph.Graph, s rdfgraph.Term) (*types.Event, error) {
	typ, ok := eventType(g, s)
	if !ok {
		return nil, strategy.NotApplicable("%s is neither a business nor a life event", s)
	}
	ev := d.core(g, s, typ)
	ev.DctType = extract.References(g, s, vocab.DCTType)
	ev.Relation = extract.IRIs(g, s, vocab.DCTRelation)
	return ev, nil
}

// parseCPSVAP3 reads the European profile.
func (d *dialects) parseCPSVAP3(g *rdfgraph.Graph, s rdfgraph.Term) (*types.Event, error) {
	typ, ok := eventType(g, s)
	if !ok {
		return nil, strategy.NotApplicable("%s is neither a business nor a life event", s)
	}
	ev := d.core(g, s, typ)
	ev.RelatedService = extract.IRIs(g, s, vocab.CVRelatedService)
	ev.CompetentAuthority = extract.Organizations(g, s, vocab.CVHasCompetentAuthority)
	return ev, nil
}

func (d *dialects) core(g *rdfgraph.Graph, s rdfgraph.Term, typ types.EventType) *types.Event {
	ev := &types.Event{
		Identifier:  extract.String(g, s, vocab.DCTIdentifier),
		Title:       extract.Localized(g, s, vocab.DCTTitle),
		Description: extract.Localized(g, s, vocab.DCTDescription),
		Subject:     extract.IRIs(g, s, vocab.DCTSubject),
		Type:        &typ,
	}
	if c, ok := d.resolver.FindContainer(g, vocab.DCATCatalog, vocab.DCATNOContainsEvent, s); ok {
		ev.Catalog = extract.Catalog(g, c)
	}
	return ev
}

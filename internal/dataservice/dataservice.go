// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataservice parses DCAT data services (APIs) into
// types.DataService records.
package dataservice

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
	StrategyDCATAPNO2 = "dcat-ap-no-2"
	StrategyDCATAP3   = "dcat-ap-3"

	PriorityDCATAPNO2 = 100
	PriorityDCATAP3   = 50
)

var AcceptableTypes = []string{vocab.DCATDataService}

// New returns the data service parser with both dialects registered.
func New(cfg types.ParserConfig, logger *slog.Logger, m *metrics.Metrics) *pipeline.Parser[types.DataService] {
	locator := harvest.NewLocator(cfg.Namespace, logger)
	d := &dialects{resolver: resolve.New(logger)}
	identify := func(rec *types.DataService, g *rdfgraph.Graph, subject rdfgraph.Term, id string) {
		rec.ID = &id
		rec.URI = extract.URIOf(subject)
		rec.Harvest = locator.Metadata(g, subject, id)
	}

	reg := strategy.NewRegistry[types.DataService](strategy.Config{
		Kind:        string(types.KindDataService),
		MaxParallel: cfg.MaxParallel,
		Logger:      logger,
		Metrics:     m,
	})
	reg.Register(strategy.Dialect[types.DataService]{ParseFunc: d.parseDCATAPNO2, IdentifyFunc: identify}, PriorityDCATAPNO2, StrategyDCATAPNO2)
	reg.Register(strategy.Dialect[types.DataService]{ParseFunc: d.parseDCATAP3, IdentifyFunc: identify}, PriorityDCATAP3, StrategyDCATAP3)

	return pipeline.New(pipeline.Config[types.DataService]{
		Kind:            types.KindDataService,
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

// parseDCATAPNO2 reads the Norwegian profile, which also states whether
// the service is free of charge.
func (d *dialects) parseDCATAPNO2(g *rdfgraph.Graph, s rdfgraph.Term) (*types.DataService, error) {
	if !g.HasType(s, vocab.DCATDataService) {
		return nil, strategy.NotApplicable("%s is not a dcat:DataService", s)
	}
	ds := d.core(g, s)
	ds.IsFree = extract.Bool(g, s, vocab.SchemaIsAccessibleForFree)
	return ds, nil
}

// parseDCATAP3 reads the European DCAT-AP 3 additions.
func (d *dialects) parseDCATAP3(g *rdfgraph.Graph, s rdfgraph.Term) (*types.DataService, error) {
	if !g.HasType(s, vocab.DCATDataService) {
		return nil, strategy.NotApplicable("%s is not a dcat:DataService", s)
	}
	ds := d.core(g, s)
	ds.Availability = extract.Reference(g, s, vocab.DCATAPAvailability)
	ds.HVDCategory = extract.References(g, s, vocab.DCATAPHVDCategory)
	return ds, nil
}

func (d *dialects) core(g *rdfgraph.Graph, s rdfgraph.Term) *types.DataService {
	ds := &types.DataService{
		Identifier:          extract.Strings(g, s, vocab.DCTIdentifier),
		Title:               extract.Localized(g, s, vocab.DCTTitle),
		Description:         extract.Localized(g, s, vocab.DCTDescription),
		Publisher:           extract.Organization(g, s, vocab.DCTPublisher),
		ContactPoint:        extract.ContactPoints(g, s),
		EndpointURL:         extract.Strings(g, s, vocab.DCATEndpointURL),
		EndpointDescription: extract.Strings(g, s, vocab.DCATEndpointDescription),
		Format:              extract.MediaTypes(g, s, vocab.DCTFormat, vocab.DCATMediaType),
		ServesDataset:       extract.IRIs(g, s, vocab.DCATServesDataset),
		Keyword:             extract.LocalizedList(g, s, vocab.DCATKeyword),
		Theme:               extract.References(g, s, vocab.DCATTheme),
		LandingPage:         extract.Strings(g, s, vocab.DCATLandingPage),
		ConformsTo:          extract.References(g, s, vocab.DCTConformsTo),
		AccessRights:        extract.Reference(g, s, vocab.DCTAccessRights),
		License:             extract.References(g, s, vocab.DCTLicense),
		Issued:              extract.String(g, s, vocab.DCTIssued),
		Modified:            extract.String(g, s, vocab.DCTModified),
	}
	if c, ok := d.resolver.FindContainer(g, vocab.DCATCatalog, vocab.DCATServiceProp, s); ok {
		ds.Catalog = extract.Catalog(g, c)
	}
	ds.IsOpenAccess = extract.HasCode(ds.AccessRights, extract.AccessRightPublic)
	ds.IsOpenLicense = extract.AnyOpenLicense(ds.License)
	return ds
}

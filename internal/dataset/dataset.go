// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset parses DCAT datasets and dataset series into
// types.Dataset records.
//
// Two dialects are registered. DCAT-AP-NO 2 (priority 100) reads the
// current profile including series links and DCAT-AP 3 additions.
// DCAT-AP-NO 1 (priority 50) reads the older profile and never sets fields
// that profile lacks. The merger fills gaps in the newer result from the
// older one.
package dataset

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

// Strategy names and priorities.
const (
	StrategyV2 = "dcat-ap-no-2"
	StrategyV1 = "dcat-ap-no-1"

	PriorityV2 = 100
	PriorityV1 = 50
)

// AcceptableTypes are the rdf:type IRIs a dataset primary topic may carry.
var AcceptableTypes = []string{vocab.DCATDataset, vocab.DCATDatasetSeries}

// New returns the dataset parser with both dialects registered.
func New(cfg types.ParserConfig, logger *slog.Logger, m *metrics.Metrics) *pipeline.Parser[types.Dataset] {
	locator := harvest.NewLocator(cfg.Namespace, logger)
	d := &dialects{resolver: resolve.New(logger)}
	identify := func(rec *types.Dataset, g *rdfgraph.Graph, subject rdfgraph.Term, id string) {
		rec.ID = &id
		rec.URI = extract.URIOf(subject)
		rec.Harvest = locator.Metadata(g, subject, id)
	}

	reg := strategy.NewRegistry[types.Dataset](strategy.Config{
		Kind:        string(types.KindDataset),
		MaxParallel: cfg.MaxParallel,
		Logger:      logger,
		Metrics:     m,
	})
	reg.Register(strategy.Dialect[types.Dataset]{ParseFunc: d.parseV2, IdentifyFunc: identify}, PriorityV2, StrategyV2)
	reg.Register(strategy.Dialect[types.Dataset]{ParseFunc: d.parseV1, IdentifyFunc: identify}, PriorityV1, StrategyV1)

	return pipeline.New(pipeline.Config[types.Dataset]{
		Kind:            types.KindDataset,
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

// parseV2 reads DCAT-AP-NO 2.
func (d *dialects) parseV2(g *rdfgraph.Graph, s rdfgraph.Term) (*types.Dataset, error) {
	isSeries := g.HasType(s, vocab.DCATDatasetSeries)
	if !isSeries && !g.HasType(s, vocab.DCATDataset) {
		return nil, strategy.NotApplicable("%s is not a dcat:Dataset", s)
	}

	ds := d.core(g, s)
	ds.ApplicableLegislation = extract.References(g, s, vocab.DCATAPApplicableLegislation)
	ds.HVDCategory = extract.References(g, s, vocab.DCATAPHVDCategory)
	ds.InSeries = extract.IRI(g, s, vocab.DCATInSeries)
	ds.Previous = extract.IRI(g, s, vocab.DCATPrev)
	if isSeries {
		ds.DatasetsInSeries = resolve.SeriesChain(g, s)
	}
	return ds, nil
}

// parseV1 reads DCAT-AP-NO 1.1. That profile has no dataset series, so
// series subjects are left to newer dialects.
func (d *dialects) parseV1(g *rdfgraph.Graph, s rdfgraph.Term) (*types.Dataset, error) {
	if g.HasType(s, vocab.DCATDatasetSeries) {
		return nil, strategy.NotApplicable("dataset series %s predates DCAT-AP-NO 1", s)
	}
	if !g.HasType(s, vocab.DCATDataset) {
		return nil, strategy.NotApplicable("%s is not a dcat:Dataset", s)
	}

	ds := d.core(g, s)
	ds.AccessRightsComment = extract.Strings(g, s, vocab.DCATNOAccessRightsComment)
	return ds, nil
}

// core reads the properties both profiles share and derives the flags.
func (d *dialects) core(g *rdfgraph.Graph, s rdfgraph.Term) *types.Dataset {
	ds := &types.Dataset{
		Identifier:         extract.Strings(g, s, vocab.DCTIdentifier),
		Title:              extract.Localized(g, s, vocab.DCTTitle),
		Description:        extract.Localized(g, s, vocab.DCTDescription),
		Publisher:          extract.Organization(g, s, vocab.DCTPublisher),
		ContactPoint:       extract.ContactPoints(g, s),
		Keyword:            extract.LocalizedList(g, s, vocab.DCATKeyword),
		Theme:              extract.References(g, s, vocab.DCATTheme),
		Language:           extract.References(g, s, vocab.DCTLanguage),
		Spatial:            extract.References(g, s, vocab.DCTSpatial),
		Temporal:           extract.PeriodsOfTime(g, s),
		Issued:             extract.String(g, s, vocab.DCTIssued),
		Modified:           extract.String(g, s, vocab.DCTModified),
		LandingPage:        extract.Strings(g, s, vocab.DCATLandingPage),
		AccessRights:       extract.Reference(g, s, vocab.DCTAccessRights),
		Provenance:         extract.Reference(g, s, vocab.DCTProvenance),
		AccrualPeriodicity: extract.Reference(g, s, vocab.DCTAccrualPeriod),
		Type:               extract.String(g, s, vocab.DCTType),
		ConformsTo:         extract.References(g, s, vocab.DCTConformsTo),
		Distribution:       extract.Distributions(g, s, vocab.DCATDistributionProp),
		Sample:             extract.Distributions(g, s, vocab.ADMSSample),
	}
	if c, ok := d.resolver.FindContainer(g, vocab.DCATCatalog, vocab.DCATDatasetProp, s); ok {
		ds.Catalog = extract.Catalog(g, c)
	}

	ds.IsOpenData = openData(ds)
	ds.IsAuthoritative = extract.HasCode(ds.Provenance, extract.ProvenanceNational)
	ds.IsRelatedToTransportportal = transportRelated(ds.Theme)
	return ds
}

// openData holds when access is public and some distribution carries an
// open licence. It is nil when the dataset states no access rights.
func openData(ds *types.Dataset) *bool {
	public := extract.HasCode(ds.AccessRights, extract.AccessRightPublic)
	if public == nil || !*public {
		return public
	}
	var licenses []types.Reference
	for _, dist := range ds.Distribution {
		licenses = append(licenses, dist.License...)
	}
	open := extract.AnyOpenLicense(licenses)
	if open == nil {
		f := false
		return &f
	}
	return open
}

func transportRelated(themes []types.Reference) *bool {
	if len(themes) == 0 {
		return nil
	}
	related := false
	for _, t := range themes {
		if extract.IsTransportTheme(t) {
			related = true
			break
		}
	}
	return &related
}

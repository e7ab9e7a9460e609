// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package infomodel parses ModellDCAT-AP-NO information models into
// types.InformationModel records.
//
// ModellDCAT-AP-NO 1.0 (priority 100) adds the model identifier and the
// model element list. The 0.x drafts (priority 50) never set those.
package infomodel

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
	StrategyV1 = "modelldcat-ap-no-1"
	StrategyV0 = "modelldcat-ap-no-0"

	PriorityV1 = 100
	PriorityV0 = 50
)

var AcceptableTypes = []string{vocab.ModellDCATNOInformationModel}

// New returns the information model parser with both dialects registered.
func New(cfg types.ParserConfig, logger *slog.Logger, m *metrics.Metrics) *pipeline.Parser[types.InformationModel] {
	locator := harvest.NewLocator(cfg.Namespace, logger)
	d := &dialects{resolver: resolve.New(logger)}
	identify := func(rec *types.InformationModel, g *rdfgraph.Graph, subject rdfgraph.Term, id string) {
		rec.ID = &id
		rec.URI = extract.URIOf(subject)
		rec.Harvest = locator.Metadata(g, subject, id)
	}

	reg := strategy.NewRegistry[types.InformationModel](strategy.Config{
		Kind:        string(types.KindInformationModel),
		MaxParallel: cfg.MaxParallel,
		Logger:      logger,
		Metrics:     m,
	})
	reg.Register(strategy.Dialect[types.InformationModel]{ParseFunc: d.parseV1, IdentifyFunc: identify}, PriorityV1, StrategyV1)
	reg.Register(strategy.Dialect[types.InformationModel]{ParseFunc: d.parseV0, IdentifyFunc: identify}, PriorityV0, StrategyV0)

	return pipeline.New(pipeline.Config[types.InformationModel]{
		Kind:            types.KindInformationModel,
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

func (d *dialects) parseV1(g *rdfgraph.Graph, s rdfgraph.Term) (*types.InformationModel, error) {
	if !g.HasType(s, vocab.ModellDCATNOInformationModel) {
		return nil, strategy.NotApplicable("%s is not a modelldcatno:InformationModel", s)
	}
	im := d.core(g, s)
	im.InformationModelIdentifier = extract.String(g, s, vocab.ModellDCATNOInformationModelIdentifier)
	im.ContainsModelElements = extract.IRIs(g, s, vocab.ModellDCATNOContainsModelElement)
	im.Status = extract.Reference(g, s, vocab.ADMSStatus)
	return im, nil
}

// parseV0 reads the 0.x drafts. Those carry the version note as
// owl:versionInfo text and have no adms:status.
func (d *dialects) parseV0(g *rdfgraph.Graph, s rdfgraph.Term) (*types.InformationModel, error) {
	if !g.HasType(s, vocab.ModellDCATNOInformationModel) {
		return nil, strategy.NotApplicable("%s is not a modelldcatno:InformationModel", s)
	}
	return d.core(g, s), nil
}

func (d *dialects) core(g *rdfgraph.Graph, s rdfgraph.Term) *types.InformationModel {
	im := &types.InformationModel{
		Identifier:   extract.Strings(g, s, vocab.DCTIdentifier),
		Title:        extract.Localized(g, s, vocab.DCTTitle),
		Description:  extract.Localized(g, s, vocab.DCTDescription),
		Publisher:    extract.Organization(g, s, vocab.DCTPublisher),
		ContactPoint: extract.ContactPoints(g, s),
		Keyword:      extract.LocalizedList(g, s, vocab.DCATKeyword),
		Theme:        extract.References(g, s, vocab.DCATTheme),
		Language:     extract.References(g, s, vocab.DCTLanguage),
		Issued:       extract.String(g, s, vocab.DCTIssued),
		Modified:     extract.String(g, s, vocab.DCTModified),
		VersionInfo:  extract.String(g, s, vocab.OWLVersionInfo),
		VersionNotes: extract.Localized(g, s, vocab.ADMSVersionNotes),
		License:      extract.References(g, s, vocab.DCTLicense),
		Homepage:     extract.IRI(g, s, vocab.FOAFHomepage),
		Subject:      extract.IRIs(g, s, vocab.DCTSubject),
		Provenance:   extract.Reference(g, s, vocab.DCTProvenance),
		Replaces:     extract.IRIs(g, s, vocab.DCTReplaces),
		IsReplacedBy: extract.IRIs(g, s, vocab.DCTIsReplacedBy),
		HasPart:      extract.IRIs(g, s, vocab.DCTHasPart),
		IsPartOf:     extract.IRIs(g, s, vocab.DCTIsPartOf),
	}
	if c, ok := d.resolver.FindContainer(g, vocab.DCATCatalog, vocab.ModellDCATNOModel, s); ok {
		im.Catalog = extract.Catalog(g, c)
	}
	im.IsAuthoritative = extract.HasCode(im.Provenance, extract.ProvenanceNational)
	return im
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"path"
	"strings"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/vocab"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

// Organization reads the agent linked from subject by predicate.
func Organization(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) *types.Organization {
	node, ok := Node(g, subject, predicate)
	if !ok {
		return nil
	}
	return organizationAt(g, node)
}

// Organizations reads every agent linked from subject by predicate.
func Organizations(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) []types.Organization {
	var out []types.Organization
	for _, node := range Nodes(g, subject, predicate) {
		if org := organizationAt(g, node); org != nil {
			out = append(out, *org)
		}
	}
	return out
}

func organizationAt(g *rdfgraph.Graph, node rdfgraph.Term) *types.Organization {
	org := types.Organization{
		URI:      URIOf(node),
		ID:       String(g, node, vocab.DCTIdentifier),
		Homepage: IRI(g, node, vocab.FOAFHomepage),
	}
	for _, v := range g.ValuesOf(node, vocab.FOAFName) {
		if !v.IsLiteral() {
			continue
		}
		if v.Lang == "" && org.Name == nil {
			org.Name = ptr(strings.TrimSpace(v.Value))
			continue
		}
		if org.PrefLabel == nil {
			org.PrefLabel = &types.LocalizedStrings{}
		}
		addLiteral(org.PrefLabel, v)
	}
	if org.PrefLabel.IsEmpty() {
		org.PrefLabel = nil
	}
	if org == (types.Organization{}) {
		return nil
	}
	return &org
}

// ContactPoints reads the vCard contacts linked by dcat:contactPoint.
func ContactPoints(g *rdfgraph.Graph, subject rdfgraph.Term) []types.ContactPoint {
	var out []types.ContactPoint
	for _, node := range Nodes(g, subject, vocab.DCATContactPoint) {
		cp := types.ContactPoint{
			FullName:         String(g, node, vocab.VCARDFn),
			OrganizationUnit: String(g, node, vocab.VCARDOrganizationUnit),
			Email:            vcardValue(g, node, vocab.VCARDHasEmail, "mailto:"),
			Phone:            vcardValue(g, node, vocab.VCARDHasTelephone, "tel:"),
			URL:              vcardValue(g, node, vocab.VCARDHasURL, ""),
		}
		if cp != (types.ContactPoint{}) {
			out = append(out, cp)
		}
	}
	return out
}

// vcardValue reads a vCard property that is either a direct IRI/literal or
// a node carrying vcard:hasValue, and strips the URI scheme prefix.
func vcardValue(g *rdfgraph.Graph, node rdfgraph.Term, predicate, scheme string) *string {
	for _, v := range g.ValuesOf(node, predicate) {
		s := text(v)
		if v.IsBlank() {
			if inner := String(g, v, vocab.VCARDHasValue); inner != nil {
				s = *inner
			}
		}
		if scheme != "" {
			s = strings.TrimPrefix(s, scheme)
		}
		if s != "" {
			return ptr(s)
		}
	}
	return nil
}

// References reads the concepts or documents linked by predicate. IRIs
// become the URI; dct:identifier or skos:notation the code; skos:prefLabel
// the label.
func References(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) []types.Reference {
	var out []types.Reference
	for _, node := range g.ValuesOf(subject, predicate) {
		if ref := referenceAt(g, node); ref != nil {
			out = append(out, *ref)
		}
	}
	return out
}

// Reference returns the first reference linked by predicate.
func Reference(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) *types.Reference {
	for _, node := range g.ValuesOf(subject, predicate) {
		if ref := referenceAt(g, node); ref != nil {
			return ref
		}
	}
	return nil
}

func referenceAt(g *rdfgraph.Graph, node rdfgraph.Term) *types.Reference {
	var ref types.Reference
	switch {
	case node.IsLiteral():
		// Some older catalogs put the code itself as a literal.
		if s := text(node); s != "" {
			ref.Code = ptr(s)
		}
	default:
		ref.URI = URIOf(node)
		ref.Code = String(g, node, vocab.DCTIdentifier, vocab.SKOSNotation)
		ref.PrefLabel = Localized(g, node, vocab.SKOSPrefLabel)
		if ref.PrefLabel == nil {
			ref.PrefLabel = Localized(g, node, vocab.RDFSLabel)
		}
	}
	if ref == (types.Reference{}) {
		return nil
	}
	return &ref
}

// PeriodsOfTime reads dct:temporal intervals. Both DCAT 2 and the older
// schema.org start/end properties are accepted.
func PeriodsOfTime(g *rdfgraph.Graph, subject rdfgraph.Term) []types.PeriodOfTime {
	var out []types.PeriodOfTime
	for _, node := range Nodes(g, subject, vocab.DCTTemporal) {
		p := types.PeriodOfTime{
			StartDate: String(g, node, vocab.DCATStartDate, vocab.SchemaStartDate),
			EndDate:   String(g, node, vocab.DCATEndDate, vocab.SchemaEndDate),
		}
		if p != (types.PeriodOfTime{}) {
			out = append(out, p)
		}
	}
	return out
}

// MediaTypes reads formats from each of predicates. An IRI yields URI and
// a code taken from its last path segment; a literal yields a name.
func MediaTypes(g *rdfgraph.Graph, subject rdfgraph.Term, predicates ...string) []types.MediaType {
	var out []types.MediaType
	seen := make(map[rdfgraph.Term]bool)
	for _, p := range predicates {
		for _, v := range g.ValuesOf(subject, p) {
			if seen[v] {
				continue
			}
			seen[v] = true
			var mt types.MediaType
			switch {
			case v.IsIRI():
				mt.URI = ptr(v.Value)
				if code := path.Base(strings.TrimRight(v.Value, "/")); code != "." && code != "/" {
					mt.Code = ptr(code)
				}
				mt.Name = String(g, v, vocab.SKOSPrefLabel, vocab.RDFSLabel)
			case v.IsLiteral():
				if s := text(v); s != "" {
					mt.Name = ptr(s)
				}
			}
			if mt != (types.MediaType{}) {
				out = append(out, mt)
			}
		}
	}
	return out
}

// Distributions reads the distributions (or samples) linked by predicate.
func Distributions(g *rdfgraph.Graph, subject rdfgraph.Term, predicate string) []types.Distribution {
	var out []types.Distribution
	for _, node := range Nodes(g, subject, predicate) {
		d := types.Distribution{
			URI:           URIOf(node),
			Title:         Localized(g, node, vocab.DCTTitle),
			Description:   Localized(g, node, vocab.DCTDescription),
			AccessURL:     Strings(g, node, vocab.DCATAccessURL),
			DownloadURL:   Strings(g, node, vocab.DCATDownloadURL),
			Format:        MediaTypes(g, node, vocab.DCTFormat, vocab.DCATMediaType),
			License:       References(g, node, vocab.DCTLicense),
			ConformsTo:    References(g, node, vocab.DCTConformsTo),
			AccessService: IRIs(g, node, vocab.DCATAccessService),
		}
		if hasDistributionContent(d) {
			out = append(out, d)
		}
	}
	return out
}

func hasDistributionContent(d types.Distribution) bool {
	return d.URI != nil || d.Title != nil || d.Description != nil ||
		len(d.AccessURL) > 0 || len(d.DownloadURL) > 0 || len(d.Format) > 0 ||
		len(d.License) > 0 || len(d.ConformsTo) > 0 || len(d.AccessService) > 0
}

// Catalog reads the container resource at node.
func Catalog(g *rdfgraph.Graph, node rdfgraph.Term) *types.Catalog {
	c := types.Catalog{
		URI:         URIOf(node),
		ID:          String(g, node, vocab.DCTIdentifier),
		Title:       Localized(g, node, vocab.DCTTitle),
		Description: Localized(g, node, vocab.DCTDescription),
		Publisher:   Organization(g, node, vocab.DCTPublisher),
	}
	if c.Title == nil {
		c.Title = Localized(g, node, vocab.SKOSPrefLabel)
	}
	if c == (types.Catalog{}) {
		return nil
	}
	return &c
}

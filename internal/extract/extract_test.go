// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/vocab"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

var subject = rdfgraph.IRI("https://example.org/datasets/1")

func TestString(t *testing.T) {
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCTIdentifier, rdfgraph.Literal("  ")).
		Add(subject, vocab.DCTIdentifier, rdfgraph.Literal("id-1")).
		Add(subject, vocab.DCTType, rdfgraph.IRI("https://example.org/type")).
		Graph()

	assert.Equal(t, "id-1", *String(g, subject, vocab.DCTIdentifier))
	assert.Equal(t, "https://example.org/type", *String(g, subject, vocab.DCTTitle, vocab.DCTType))
	assert.Nil(t, String(g, subject, vocab.DCTTitle))
}

func TestStringsAndIRIsDeduplicate(t *testing.T) {
	b := rdfgraph.NewBuilder()
	b.Add(subject, vocab.DCATLandingPage, rdfgraph.IRI("https://a"))
	b.Add(subject, vocab.DCATLandingPage, rdfgraph.Literal("https://a"))
	b.Add(subject, vocab.DCATLandingPage, rdfgraph.IRI("https://b"))
	b.Add(subject, vocab.DCATLandingPage, rdfgraph.Blank("x"))
	g := b.Graph()

	assert.Equal(t, []string{"https://a", "https://b"}, Strings(g, subject, vocab.DCATLandingPage))
	assert.Equal(t, []string{"https://a", "https://b"}, IRIs(g, subject, vocab.DCATLandingPage))
	assert.Nil(t, IRIs(g, subject, vocab.DCTTitle))
}

func TestLocalized(t *testing.T) {
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCTTitle, rdfgraph.LangLiteral("Tittel", "nb")).
		Add(subject, vocab.DCTTitle, rdfgraph.LangLiteral("Annen tittel", "nb")).
		Add(subject, vocab.DCTTitle, rdfgraph.LangLiteral("Title", "en-GB")).
		Add(subject, vocab.DCTTitle, rdfgraph.LangLiteral("Titre", "fr")).
		Add(subject, vocab.DCTDescription, rdfgraph.Literal("Beskrivelse")).
		Graph()

	assert.Equal(t, &types.LocalizedStrings{NB: "Tittel", EN: "Title"}, Localized(g, subject, vocab.DCTTitle))
	assert.Equal(t, &types.LocalizedStrings{NB: "Beskrivelse"}, Localized(g, subject, vocab.DCTDescription))
	assert.Nil(t, Localized(g, subject, vocab.DCATKeyword))
}

func TestLocalizedOnlyUnsupportedLanguageIsAbsent(t *testing.T) {
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCTTitle, rdfgraph.LangLiteral("Titre", "fr")).
		Graph()

	assert.Nil(t, Localized(g, subject, vocab.DCTTitle))
}

func TestLocalizedList(t *testing.T) {
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCATKeyword, rdfgraph.LangLiteral("vei", "nb")).
		Add(subject, vocab.DCATKeyword, rdfgraph.LangLiteral("road", "en")).
		Graph()

	assert.Equal(t, []types.LocalizedStrings{{NB: "vei"}, {EN: "road"}}, LocalizedList(g, subject, vocab.DCATKeyword))
}

func TestBool(t *testing.T) {
	g := rdfgraph.NewBuilder().
		Add(subject, "https://example.org/free", rdfgraph.TypedLiteral("true", vocab.XSDBoolean)).
		Add(subject, "https://example.org/paid", rdfgraph.Literal("0")).
		Add(subject, "https://example.org/odd", rdfgraph.Literal("maybe")).
		Graph()

	require.NotNil(t, Bool(g, subject, "https://example.org/free"))
	assert.True(t, *Bool(g, subject, "https://example.org/free"))
	assert.False(t, *Bool(g, subject, "https://example.org/paid"))
	assert.Nil(t, Bool(g, subject, "https://example.org/odd"))
}

func TestOrganization(t *testing.T) {
	org := rdfgraph.IRI("https://data.brreg.no/enhetsregisteret/api/enheter/974760673")
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCTPublisher, org).
		Add(org, vocab.DCTIdentifier, rdfgraph.Literal("974760673")).
		Add(org, vocab.FOAFName, rdfgraph.Literal("REGISTERENHETEN I BRØNNØYSUND")).
		Add(org, vocab.FOAFName, rdfgraph.LangLiteral("Brønnøysundregistrene", "nb")).
		Add(org, vocab.FOAFName, rdfgraph.LangLiteral("Brønnøysund Register Centre", "en")).
		Graph()

	got := Organization(g, subject, vocab.DCTPublisher)
	require.NotNil(t, got)
	assert.Equal(t, org.Value, *got.URI)
	assert.Equal(t, "974760673", *got.ID)
	assert.Equal(t, "REGISTERENHETEN I BRØNNØYSUND", *got.Name)
	assert.Equal(t, &types.LocalizedStrings{NB: "Brønnøysundregistrene", EN: "Brønnøysund Register Centre"}, got.PrefLabel)
}

func TestOrganizationEmptyBlankNodeIsAbsent(t *testing.T) {
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCTPublisher, rdfgraph.Blank("p")).
		Graph()

	assert.Nil(t, Organization(g, subject, vocab.DCTPublisher))
	assert.Nil(t, Organizations(g, subject, vocab.DCTPublisher))
}

func TestContactPoints(t *testing.T) {
	cp := rdfgraph.Blank("cp")
	email := rdfgraph.Blank("email")
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCATContactPoint, cp).
		Add(cp, vocab.VCARDFn, rdfgraph.Literal("Kundesenter")).
		Add(cp, vocab.VCARDHasEmail, rdfgraph.IRI("mailto:post@example.org")).
		Add(cp, vocab.VCARDHasTelephone, rdfgraph.IRI("tel:+4712345678")).
		Add(subject, vocab.DCATContactPoint, rdfgraph.Blank("empty")).
		Add(subject, vocab.DCATContactPoint, rdfgraph.Blank("nested")).
		Add(rdfgraph.Blank("nested"), vocab.VCARDHasEmail, email).
		Add(email, vocab.VCARDHasValue, rdfgraph.IRI("mailto:other@example.org")).
		Graph()

	got := ContactPoints(g, subject)
	require.Len(t, got, 2)
	assert.Equal(t, "Kundesenter", *got[0].FullName)
	assert.Equal(t, "post@example.org", *got[0].Email)
	assert.Equal(t, "+4712345678", *got[0].Phone)
	assert.Nil(t, got[0].URL)
	assert.Equal(t, "other@example.org", *got[1].Email)
}

func TestReferences(t *testing.T) {
	theme := rdfgraph.IRI("http://publications.europa.eu/resource/authority/data-theme/TRAN")
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCATTheme, theme).
		Add(theme, vocab.SKOSPrefLabel, rdfgraph.LangLiteral("Transport", "en")).
		Add(theme, vocab.SKOSNotation, rdfgraph.Literal("TRAN")).
		Add(subject, vocab.DCATTheme, rdfgraph.Literal("LEGACY")).
		Add(subject, vocab.DCATTheme, rdfgraph.Blank("empty")).
		Graph()

	got := References(g, subject, vocab.DCATTheme)
	require.Len(t, got, 2)
	assert.Equal(t, theme.Value, *got[0].URI)
	assert.Equal(t, "TRAN", *got[0].Code)
	assert.Equal(t, &types.LocalizedStrings{EN: "Transport"}, got[0].PrefLabel)
	assert.Nil(t, got[1].URI)
	assert.Equal(t, "LEGACY", *got[1].Code)

	first := Reference(g, subject, vocab.DCATTheme)
	require.NotNil(t, first)
	assert.Equal(t, theme.Value, *first.URI)
}

func TestPeriodsOfTime(t *testing.T) {
	dcat2 := rdfgraph.Blank("p1")
	legacy := rdfgraph.Blank("p2")
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCTTemporal, dcat2).
		Add(dcat2, vocab.DCATStartDate, rdfgraph.TypedLiteral("2020-01-01", vocab.XSDDate)).
		Add(subject, vocab.DCTTemporal, legacy).
		Add(legacy, vocab.SchemaEndDate, rdfgraph.TypedLiteral("2019-12-31", vocab.XSDDate)).
		Add(subject, vocab.DCTTemporal, rdfgraph.Blank("empty")).
		Graph()

	got := PeriodsOfTime(g, subject)
	require.Len(t, got, 2)
	assert.Equal(t, "2020-01-01", *got[0].StartDate)
	assert.Nil(t, got[0].EndDate)
	assert.Equal(t, "2019-12-31", *got[1].EndDate)
}

func TestMediaTypes(t *testing.T) {
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCTFormat, rdfgraph.IRI("https://www.iana.org/assignments/media-types/text/csv")).
		Add(subject, vocab.DCTFormat, rdfgraph.Literal("JSON")).
		Add(subject, vocab.DCATMediaType, rdfgraph.IRI("https://www.iana.org/assignments/media-types/text/csv")).
		Graph()

	got := MediaTypes(g, subject, vocab.DCTFormat, vocab.DCATMediaType)
	require.Len(t, got, 2)
	assert.Equal(t, "csv", *got[0].Code)
	assert.Equal(t, "JSON", *got[1].Name)
}

func TestDistributions(t *testing.T) {
	dist := rdfgraph.IRI("https://example.org/distributions/1")
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.DCATDistributionProp, dist).
		Add(dist, vocab.DCATAccessURL, rdfgraph.IRI("https://example.org/download")).
		Add(dist, vocab.DCTLicense, rdfgraph.IRI("http://data.norge.no/nlod/no/2.0")).
		Add(subject, vocab.DCATDistributionProp, rdfgraph.Blank("empty")).
		Graph()

	got := Distributions(g, subject, vocab.DCATDistributionProp)
	require.Len(t, got, 1)
	assert.Equal(t, dist.Value, *got[0].URI)
	assert.Equal(t, []string{"https://example.org/download"}, got[0].AccessURL)
	require.Len(t, got[0].License, 1)
	assert.Equal(t, "http://data.norge.no/nlod/no/2.0", *got[0].License[0].URI)
}

func TestCatalog(t *testing.T) {
	cat := rdfgraph.IRI("https://example.org/catalogs/1")
	g := rdfgraph.NewBuilder().
		Add(cat, vocab.DCTTitle, rdfgraph.LangLiteral("Katalog", "nb")).
		Add(cat, vocab.DCTIdentifier, rdfgraph.Literal("cat-1")).
		Graph()

	got := Catalog(g, cat)
	require.NotNil(t, got)
	assert.Equal(t, cat.Value, *got.URI)
	assert.Equal(t, "cat-1", *got.ID)
	assert.Equal(t, "Katalog", got.Title.NB)

	assert.Nil(t, Catalog(g, rdfgraph.Blank("nothing")))
}

func TestLocalizedVia(t *testing.T) {
	l1, l2 := rdfgraph.Blank("l1"), rdfgraph.Blank("l2")
	g := rdfgraph.NewBuilder().
		Add(subject, vocab.SKOSXLAltLabel, l1).
		Add(subject, vocab.SKOSXLAltLabel, l2).
		Add(l1, vocab.SKOSXLLiteralForm, rdfgraph.LangLiteral("bil", "nb")).
		Add(l1, vocab.SKOSXLLiteralForm, rdfgraph.LangLiteral("car", "en")).
		Add(l2, vocab.SKOSXLLiteralForm, rdfgraph.LangLiteral("kjøretøy", "nb")).
		Graph()

	assert.Equal(t, &types.LocalizedStrings{NB: "bil", EN: "car"}, LocalizedVia(g, subject, vocab.SKOSXLAltLabel, vocab.SKOSXLLiteralForm))
	assert.Len(t, LocalizedListVia(g, subject, vocab.SKOSXLAltLabel, vocab.SKOSXLLiteralForm), 2)
	assert.Nil(t, LocalizedVia(g, subject, vocab.SKOSXLPrefLabel, vocab.SKOSXLLiteralForm))
	assert.Nil(t, LocalizedListVia(g, subject, vocab.SKOSXLPrefLabel, vocab.SKOSXLLiteralForm))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdfgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exDataset = "https://example.org/datasets/1"
	dctTitle  = "http://purl.org/dc/terms/title"
	dcatDS    = "http://www.w3.org/ns/dcat#Dataset"
)

func TestBuilderDropsDuplicates(t *testing.T) {
	g := NewBuilder().
		Add(IRI(exDataset), dctTitle, LangLiteral("Tittel", "nb")).
		Add(IRI(exDataset), dctTitle, LangLiteral("Tittel", "NB")).
		Add(IRI(exDataset), dctTitle, LangLiteral("Title", "en")).
		Graph()

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []Term{LangLiteral("Tittel", "nb"), LangLiteral("Title", "en")}, g.ValuesOf(IRI(exDataset), dctTitle))
}

func TestGraphLookups(t *testing.T) {
	catalog := IRI("https://example.org/catalogs/1")
	ds := IRI(exDataset)
	g := NewBuilder().
		Add(ds, rdfType, IRI(dcatDS)).
		Add(catalog, "http://www.w3.org/ns/dcat#dataset", ds).
		Graph()

	assert.True(t, g.HasType(ds, dcatDS))
	assert.False(t, g.HasType(catalog, dcatDS))
	assert.Equal(t, []Term{ds}, g.ResourcesOfType(dcatDS))
	assert.Equal(t, []Term{catalog}, g.SubjectsWith("http://www.w3.org/ns/dcat#dataset", ds))
	assert.True(t, g.Contains(catalog, "http://www.w3.org/ns/dcat#dataset", ds))
	assert.Nil(t, g.ValuesOf(ds, dctTitle))
	assert.Nil(t, g.ResourcesOfType("http://example.org/Nothing"))
}

func TestValuesOfReturnsCopy(t *testing.T) {
	ds := IRI(exDataset)
	g := NewBuilder().Add(ds, dctTitle, Literal("a")).Graph()

	vals := g.ValuesOf(ds, dctTitle)
	vals[0] = Literal("changed")

	assert.Equal(t, Literal("a"), g.ValuesOf(ds, dctTitle)[0])
}

func TestDecodeTurtle(t *testing.T) {
	ttl := `@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dct: <http://purl.org/dc/terms/> .

<https://example.org/datasets/1> a dcat:Dataset ;
    dct:title "Tittel"@nb , "Plain" ;
    dct:issued "2020-01-01"^^<http://www.w3.org/2001/XMLSchema#date> ;
    dct:publisher [ dct:identifier "123" ] .
`
	g, err := Decode(strings.NewReader(ttl), FormatTurtle)
	require.NoError(t, err)

	ds := IRI(exDataset)
	assert.True(t, g.HasType(ds, dcatDS))
	titles := g.ValuesOf(ds, dctTitle)
	require.Len(t, titles, 2)
	assert.Contains(t, titles, LangLiteral("Tittel", "nb"))
	assert.Contains(t, titles, Literal("Plain"))

	issued := g.ValuesOf(ds, "http://purl.org/dc/terms/issued")
	require.Len(t, issued, 1)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#date", issued[0].Datatype)

	pubs := g.ValuesOf(ds, "http://purl.org/dc/terms/publisher")
	require.Len(t, pubs, 1)
	assert.True(t, pubs[0].IsBlank())
	assert.Equal(t, []Term{Literal("123")}, g.ValuesOf(pubs[0], "http://purl.org/dc/terms/identifier"))
}

func TestDecodeNTriples(t *testing.T) {
	nt := `<https://example.org/datasets/1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/dcat#Dataset> .
<https://example.org/datasets/1> <http://purl.org/dc/terms/title> "Title"@en .
`
	g, err := Decode(strings.NewReader(nt), FormatNTriples)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("this is not turtle"), FormatTurtle)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"turtle", FormatTurtle, false},
		{"TTL", FormatTurtle, false},
		{"nt", FormatNTriples, false},
		{"rdf/xml", FormatRDFXML, false},
		{"jsonld", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDetection(t *testing.T) {
	assert.Equal(t, FormatNTriples, FormatFromPath("graph.nt"))
	assert.Equal(t, FormatRDFXML, FormatFromPath("graph.rdf"))
	assert.Equal(t, FormatTurtle, FormatFromPath("graph"))

	f, ok := FormatFromContentType("text/turtle; charset=utf-8")
	assert.True(t, ok)
	assert.Equal(t, FormatTurtle, f)
	_, ok = FormatFromContentType("application/json")
	assert.False(t, ok)
}

func TestTermString(t *testing.T) {
	assert.Equal(t, "<https://x>", IRI("https://x").String())
	assert.Equal(t, "_:b0", Blank("_:b0").String())
	assert.Equal(t, `"a"@nb`, LangLiteral("a", "NB").String())
	assert.Equal(t, `"1"^^<http://www.w3.org/2001/XMLSchema#int>`, TypedLiteral("1", "http://www.w3.org/2001/XMLSchema#int").String())
}

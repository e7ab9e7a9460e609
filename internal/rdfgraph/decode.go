// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdfgraph

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
)

const xsdString = "http://www.w3.org/2001/XMLSchema#string"

// Format names an RDF serialization accepted by Decode.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatNTriples Format = "ntriples"
	FormatRDFXML   Format = "rdfxml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "nt", "n-triples":
		return FormatNTriples, nil
	case "rdfxml", "rdf", "xml", "rdf/xml":
		return FormatRDFXML, nil
	default:
		return "", fmt.Errorf("unsupported RDF format %q: use turtle, ntriples or rdfxml", s)
	}
}

// FormatFromPath guesses the format from a file extension. Unknown
// extensions fall back to Turtle.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt":
		return FormatNTriples
	case ".rdf", ".xml", ".owl":
		return FormatRDFXML
	default:
		return FormatTurtle
	}
}

// FormatFromContentType maps an HTTP Content-Type to a format. The second
// return value is false for types it does not recognise.
func FormatFromContentType(contentType string) (Format, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	switch mediaType {
	case "text/turtle", "application/x-turtle":
		return FormatTurtle, true
	case "application/n-triples":
		return FormatNTriples, true
	case "application/rdf+xml":
		return FormatRDFXML, true
	default:
		return "", false
	}
}

func (f Format) decoderFormat() (rdf.Format, error) {
	switch f {
	case FormatTurtle:
		return rdf.Turtle, nil
	case FormatNTriples:
		return rdf.NTriples, nil
	case FormatRDFXML:
		return rdf.RDFXML, nil
	default:
		return 0, fmt.Errorf("unsupported RDF format %q", string(f))
	}
}

// Decode reads a serialized graph from r.
func Decode(r io.Reader, format Format) (*Graph, error) {
	df, err := format.decoderFormat()
	if err != nil {
		return nil, err
	}

	dec := rdf.NewTripleDecoder(r, df)
	b := NewBuilder()
	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", format, err)
		}
		b.Add(fromRDF(tr.Subj), tr.Pred.String(), fromRDF(tr.Obj))
	}
	return b.Graph(), nil
}

func fromRDF(t rdf.Term) Term {
	switch v := t.(type) {
	case rdf.IRI:
		return IRI(v.String())
	case rdf.Blank:
		return Blank(v.String())
	case rdf.Literal:
		lit := Term{Kind: KindLiteral, Value: v.String(), Lang: strings.ToLower(v.Lang())}
		if dt := v.DataType.String(); lit.Lang == "" && dt != xsdString {
			lit.Datatype = dt
		}
		return lit
	default:
		return Term{}
	}
}

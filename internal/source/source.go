// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads a harvested graph from a local file, standard input
// or an http(s) URL.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/httputil"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

// Stdin is the location that reads the graph from standard input.
const Stdin = "-"

// acceptHeader lists the serializations Decode understands, Turtle first.
const acceptHeader = "text/turtle, application/n-triples;q=0.9, application/rdf+xml;q=0.8"

// Loader fetches and decodes graphs.
type Loader struct {
	client *http.Client
	cfg    types.HTTPConfig
	stdin  io.Reader
}

// NewLoader returns a Loader. A nil client gets one with cfg.Timeout.
func NewLoader(client *http.Client, cfg types.HTTPConfig) *Loader {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Loader{client: client, cfg: cfg, stdin: os.Stdin}
}

// IsURL reports whether location names an http(s) resource.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load reads the graph at location. An empty format is detected from the
// response Content-Type or the file extension, defaulting to Turtle.
func (l *Loader) Load(ctx context.Context, location string, format rdfgraph.Format) (*rdfgraph.Graph, error) {
	switch {
	case location == Stdin:
		if format == "" {
			format = rdfgraph.FormatTurtle
		}
		return decode(l.stdin, format, "stdin")
	case IsURL(location):
		return l.fetch(ctx, location, format)
	default:
		return loadFile(location, format)
	}
}

func loadFile(path string, format rdfgraph.Format) (*rdfgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph: %w", err)
	}
	defer f.Close()

	if format == "" {
		format = rdfgraph.FormatFromPath(path)
	}
	return decode(f, format, path)
}

func (l *Loader) fetch(ctx context.Context, url string, format rdfgraph.Format) (*rdfgraph.Graph, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if l.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", l.cfg.UserAgent)
	}
	req.Header.Set("Accept", acceptHeader)
	if l.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+l.cfg.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, l.client, req, l.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	if format == "" {
		if f, ok := rdfgraph.FormatFromContentType(resp.Header.Get("Content-Type")); ok {
			format = f
		} else {
			format = rdfgraph.FormatFromPath(req.URL.Path)
		}
	}
	return decode(resp.Body, format, url)
}

func decode(r io.Reader, format rdfgraph.Format, name string) (*rdfgraph.Graph, error) {
	g, err := rdfgraph.Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", name, format, err)
	}
	return g, nil
}

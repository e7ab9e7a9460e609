// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/metrics"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/recordstore"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/source"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <kind>",
	Short: "Resolve and merge records from a harvested graph",
	Long: `Parse loads a harvested RDF graph and, for every --id, locates the harvest
catalog record, runs the dialect parsers for the kind and prints the merged
record. The graph is read from a file, an http(s) URL or "-" for stdin.

With --store the merged records are saved to the local record store and each
id is reported as inserted, updated or skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	f := parseCmd.Flags()
	f.StringSlice("id", nil, "external id to resolve (repeatable)")
	f.String("graph", source.Stdin, "graph location: file path, URL or - for stdin")
	f.String("format", "", "graph serialization: turtle, ntriples, rdfxml (default: detect)")
	f.Bool("yaml", false, "print records as YAML instead of JSON")
	f.Bool("store", false, "save merged records to the record store")
	f.String("metrics-out", "", "write Prometheus metrics in text format to this file")
	parseCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ids, _ := cmd.Flags().GetStringSlice("id")
	location, _ := cmd.Flags().GetString("graph")
	formatName, _ := cmd.Flags().GetString("format")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	store, _ := cmd.Flags().GetBool("store")
	metricsOut, _ := cmd.Flags().GetString("metrics-out")

	var format rdfgraph.Format
	if formatName != "" {
		if format, err = rdfgraph.ParseFormat(formatName); err != nil {
			return err
		}
	}

	logger := slog.Default()
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := source.NewLoader(nil, cfg.HTTP).Load(ctx, location, format)
	if err != nil {
		return err
	}
	logger.Info("loaded graph", slog.String("location", location), slog.Int("triples", g.Len()))

	parser := buildParsers(cfg.Parser, logger, m)[kind]

	var records []any
	failed := 0
	for _, id := range ids {
		rec, err := parser.Resolve(ctx, g, id)
		if err != nil {
			logger.Error("resolve failed", slog.String("kind", string(kind)), slog.String("id", id), slog.Any("error", err))
			failed++
			continue
		}
		records = append(records, rec)
	}

	if store && len(records) > 0 {
		if err := storeRecords(ctx, cmd.ErrOrStderr(), cfg.Store, kind, records); err != nil {
			return err
		}
	}

	if err := writeRecords(cmd.OutOrStdout(), records, asYAML); err != nil {
		return err
	}

	if metricsOut != "" {
		if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d id(s) failed to resolve", failed, len(ids))
	}
	return nil
}

func storeRecords(ctx context.Context, w io.Writer, cfg types.StoreConfig, kind types.Kind, records []any) error {
	s, err := recordstore.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	runID := recordstore.NewRunID()
	for _, rec := range records {
		var id, uri string
		if r, ok := rec.(types.Record); ok {
			id, uri = r.Identity()
		}
		outcome, err := s.Put(ctx, kind, id, uri, rec, runID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", outcome, id)
	}
	return nil
}

// writeRecords prints a single record as an object and several as a list.
func writeRecords(w io.Writer, records []any, asYAML bool) error {
	if len(records) == 0 {
		return nil
	}
	var v any = records
	if len(records) == 1 {
		v = records[0]
	}

	if !asYAML {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	// Round-trip through JSON so YAML keys match the JSON field names.
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(generic)
}

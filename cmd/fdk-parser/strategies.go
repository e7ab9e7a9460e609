// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/pipeline"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies [kind]",
	Short: "List the registered dialect parsers per kind",
	Long: `Strategies prints the dialect parsers registered for each kind with their
priority. When fields conflict, the higher-priority dialect wins the merge.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrategies,
}

func init() {
	strategiesCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(strategiesCmd)
}

type kindStrategies struct {
	Kind       types.Kind              `json:"kind"`
	Strategies []pipeline.StrategyInfo `json:"strategies"`
}

func runStrategies(cmd *cobra.Command, args []string) error {
	kinds := types.Kinds
	if len(args) == 1 {
		k, err := parseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []types.Kind{k}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	parsers := buildParsers(cfg.Parser, nil, nil)

	out := make([]kindStrategies, len(kinds))
	for i, k := range kinds {
		out[i] = kindStrategies{Kind: k, Strategies: parsers[k].Strategies()}
	}

	w := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "%-18s %-22s %s\n", "KIND", "STRATEGY", "PRIORITY")
	for _, ks := range out {
		for _, s := range ks.Strategies {
			fmt.Fprintf(w, "%-18s %-22s %d\n", ks.Kind, s.Name, s.Priority)
		}
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/recordstore"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect and export the local record store",
	Long: `Records reads the SQLite record store filled by "parse --store". Use
subcommands to list stored records, show one record or export them.`,
}

// --- list subcommand ---

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored records",
	RunE:  runRecordsList,
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	kind, err := kindFlag(cmd)
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.List(cmd.Context(), kind)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		type row struct {
			Kind     types.Kind `json:"kind"`
			ID       string     `json:"id"`
			URI      string     `json:"uri,omitempty"`
			ParsedAt string     `json:"parsed_at"`
			RunID    string     `json:"run_id"`
		}
		rows := make([]row, len(records))
		for i, r := range records {
			rows[i] = row{r.Kind, r.ID, r.URI, r.ParsedAt.Format(time.RFC3339), r.RunID}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No records stored.")
		return nil
	}
	fmt.Fprintf(w, "%-18s %-40s %s\n", "KIND", "ID", "PARSED")
	for _, r := range records {
		fmt.Fprintf(w, "%-18s %-40s %s\n", r.Kind, r.ID, r.ParsedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\n%d record(s)\n", len(records))
	return nil
}

// --- show subcommand ---

var recordsShowCmd = &cobra.Command{
	Use:   "show <kind> <id>",
	Short: "Print one stored record as JSON",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecordsShow,
}

func runRecordsShow(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	r, err := s.Get(cmd.Context(), kind, args[1])
	if err != nil {
		return err
	}
	var body any
	if err := json.Unmarshal(r.Payload, &body); err != nil {
		return fmt.Errorf("decoding stored record: %w", err)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

// --- export subcommand ---

var recordsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records to YAML or JSON",
	Long: `Export writes the stored records to export.yaml or export.json in the
store directory and prints the path.`,
	RunE: runRecordsExport,
}

func runRecordsExport(cmd *cobra.Command, args []string) error {
	kind, err := kindFlag(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var path string
	switch format {
	case "yaml":
		path, err = s.ExportYAML(cmd.Context(), kind)
	case "json":
		path, err = s.ExportJSON(cmd.Context(), kind)
	default:
		return fmt.Errorf("unknown export format %q (want yaml or json)", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

func openStore() (*recordstore.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return recordstore.Open(cfg.Store)
}

// kindFlag reads the optional --kind filter; empty means every kind.
func kindFlag(cmd *cobra.Command) (types.Kind, error) {
	s, _ := cmd.Flags().GetString("kind")
	if s == "" {
		return "", nil
	}
	return parseKind(s)
}

func init() {
	recordsListCmd.Flags().String("kind", "", "only list records of this kind")
	recordsListCmd.Flags().Bool("json", false, "output as JSON")

	recordsExportCmd.Flags().String("kind", "", "only export records of this kind")
	recordsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	recordsCmd.AddCommand(recordsListCmd, recordsShowCmd, recordsExportCmd)
	rootCmd.AddCommand(recordsCmd)
}

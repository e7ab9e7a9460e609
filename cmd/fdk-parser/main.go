// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fdk-parser CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/secrets"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the fdk-parser CLI.
var rootCmd = &cobra.Command{
	Use:   "fdk-parser",
	Short: "Resolve harvested RDF into canonical catalog records",
	Long: `fdk-parser reads a harvested RDF graph, locates the harvest catalog record
for an external id, runs every registered dialect parser for the resource kind
and merges their output into one canonical record.

Supported kinds: dataset, concept, dataservice, event, informationmodel.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(viper.GetString("log_level"))
		slog.SetDefault(logger)

		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug("loaded secrets", slog.Any("keys", s.Keys()))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./fdk-parser.yaml or ~/.config/fdk-parser/config.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("namespace", "", "IRI prefix of harvest catalog records")
	pf.String("store-dir", "", "directory holding the record store")

	viper.BindPFlag("log_level", pf.Lookup("log-level"))
	viper.BindPFlag("parser.namespace", pf.Lookup("namespace"))
	viper.BindPFlag("store.dir", pf.Lookup("store-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fdk-parser")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fdk-parser"))
		}
	}

	setDefaults(types.DefaultConfig())

	viper.SetEnvPrefix("FDK_PARSER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults(d types.Config) {
	viper.SetDefault("parser.namespace", d.Parser.Namespace)
	viper.SetDefault("parser.max_parallel", d.Parser.MaxParallel)
	viper.SetDefault("http.timeout", d.HTTP.Timeout)
	viper.SetDefault("http.user_agent", "fdk-parser/"+version)
	viper.SetDefault("http.max_retries", d.HTTP.MaxRetries)
	viper.SetDefault("store.dir", d.Store.Dir)
	viper.SetDefault("log_level", d.LogLevel)
}

// loadConfig returns the effective configuration from defaults, config
// file, environment and flags.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.Parser.MaxParallel < 1 {
		cfg.Parser.MaxParallel = 1
	}
	cfg.HTTP.Token = loadedSecrets.Get(secrets.HarvestToken)
	return cfg, nil
}

// newLogger returns a text logger on stderr at the named level. Unknown
// levels fall back to info.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

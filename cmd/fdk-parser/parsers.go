// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/concept"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/dataservice"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/dataset"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/event"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/infomodel"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/metrics"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/pipeline"
	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

// buildParsers wires one parser per kind.
func buildParsers(cfg types.ParserConfig, logger *slog.Logger, m *metrics.Metrics) map[types.Kind]pipeline.Resolver {
	return map[types.Kind]pipeline.Resolver{
		types.KindDataset:          dataset.New(cfg, logger, m),
		types.KindConcept:          concept.New(cfg, logger, m),
		types.KindDataService:      dataservice.New(cfg, logger, m),
		types.KindEvent:            event.New(cfg, logger, m),
		types.KindInformationModel: infomodel.New(cfg, logger, m),
	}
}

// parseKind validates a kind argument.
func parseKind(s string) (types.Kind, error) {
	k := types.Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range types.Kinds {
		if k == known {
			return k, nil
		}
	}
	names := make([]string, len(types.Kinds))
	for i, known := range types.Kinds {
		names[i] = string(known)
	}
	return "", fmt.Errorf("unknown kind %q (want one of %s)", s, strings.Join(names, ", "))
}

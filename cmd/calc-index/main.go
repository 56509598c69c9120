// calc-index sweeps a directory of serialized unit records, runs each
// one through construction validation and the derived-value calculators,
// and writes a sorted unit index.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/bvcalc"
	"github.com/SwiggitySwerve/megamek-web-sub008/internal/config"
	"github.com/SwiggitySwerve/megamek-web-sub008/internal/ingestion"
	"github.com/SwiggitySwerve/megamek-web-sub008/internal/models"
	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

const indexVersion = "1.0.0"

func main() {
	configDir := flag.String("config", ".", "directory holding calc-index.cfg.json")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	settings, err := config.Load(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		log = log.Level(lvl)
	}

	loader, err := ingestion.NewLoader()
	if err != nil {
		log.Fatal().Err(err).Msg("init loader")
	}

	opts := rules.Options{
		ExternalHeatSinkWarn: settings.ExternalHeatSinkWarn,
		ArmorCoverageWarn:    settings.ArmorCoverageWarn,
	}

	index, err := buildIndex(log, loader, settings.UnitsDir, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("build index")
	}

	if err := writeIndex(index, settings.OutputPath, settings.Compress); err != nil {
		log.Fatal().Err(err).Msg("write index")
	}
	log.Info().
		Int("units", index.TotalUnits).
		Str("output", settings.OutputPath).
		Bool("compressed", settings.Compress).
		Msg("index generated")
}

func buildIndex(log zerolog.Logger, loader *ingestion.Loader, dir string, opts rules.Options) (*models.Index, error) {
	var entries []models.IndexEntry

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		unit, err := loader.LoadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping record")
			return nil
		}
		entry, err := summarize(unit, opts)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping record")
			return nil
		}
		log.Debug().
			Str("unit", unit.FullName()).
			Bool("valid", entry.Valid).
			Int("bv", entry.BV).
			Msg("unit indexed")
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Chassis != entries[j].Chassis {
			return entries[i].Chassis < entries[j].Chassis
		}
		return entries[i].Model < entries[j].Model
	})

	return &models.Index{
		Version:     indexVersion,
		GeneratedAt: time.Now().Format(time.RFC3339),
		TotalUnits:  len(entries),
		Units:       entries,
	}, nil
}

func summarize(unit *models.Unit, opts rules.Options) (models.IndexEntry, error) {
	cfg, _, err := ingestion.Convert(unit)
	if err != nil {
		return models.IndexEntry{}, err
	}

	equipment := make([]bvcalc.Equipment, 0, len(unit.Equipment))
	for _, e := range unit.Equipment {
		if eq, ok := bvcalc.LookupEquipment(e.ID); ok {
			equipment = append(equipment, eq)
		}
	}

	res := rules.ValidateConstruction(cfg, opts)
	bv := bvcalc.CalculateBattleValue(cfg, equipment)
	cost := bvcalc.CalculateCost(cfg, equipment)

	return models.IndexEntry{
		ID:       unit.ID,
		Chassis:  unit.Chassis,
		Model:    unit.Model,
		Tonnage:  unit.Tonnage,
		TechBase: unit.TechBase,
		Valid:    res.Valid,
		BV:       bv.FinalBV,
		Cost:     cost.Total,
	}, nil
}

func writeIndex(index *models.Index, path string, compress bool) error {
	if compress && !strings.HasSuffix(path, ".gz") {
		path += ".gz"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		if gz != nil {
			gz.Close()
		}
		f.Close()
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

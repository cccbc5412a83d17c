// Package ingest reads voyage reports from disk and turns them into rating
// pipeline inputs.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/logging"
)

// Format is the encoding of a voyage report file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for file extensions other than .yaml, .yml and .json.
var ErrUnknownFormat = errors.New("unknown voyage report format")

// VoyageReport is one ship's annual operational data as written by the
// operator: ship identity, tonnage, distance sailed and fuel burnt in the
// target year.
type VoyageReport struct {
	ShipName          string       `yaml:"ship_name,omitempty"          json:"ship_name,omitempty"`
	IMONumber         string       `yaml:"imo_number,omitempty"         json:"imo_number,omitempty"`
	ShipType          string       `yaml:"ship_type"                    json:"ship_type"`
	DeadweightTonnage float64      `yaml:"deadweight_tonnage,omitempty" json:"deadweight_tonnage,omitempty"`
	GrossTonnage      float64      `yaml:"gross_tonnage,omitempty"      json:"gross_tonnage,omitempty"`
	DistanceNM        float64      `yaml:"distance_nm"                  json:"distance_nm"`
	TargetYear        int          `yaml:"target_year"                  json:"target_year"`
	Fuel              []FuelRecord `yaml:"fuel"                         json:"fuel"`
}

// FuelRecord is the mass of one fuel burnt, in grams.
type FuelRecord struct {
	Type  string  `yaml:"type"  json:"type"`
	Grams float64 `yaml:"grams" json:"grams"`
}

// FormatFromPath infers the report format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// LoadVoyageReport reads and validates the voyage report at path.
func LoadVoyageReport(ctx context.Context, path string) (*VoyageReport, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_voyage_report").
		Str("path", path).
		Msg("loading voyage report")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading voyage report: %w", err)
	}

	report, err := ParseVoyageReport(data, format)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "load_voyage_report").
			Str("path", path).
			Err(err).
			Msg("failed to parse voyage report")
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("ship_type", report.ShipType).
		Int("fuel_count", len(report.Fuel)).
		Int("target_year", report.TargetYear).
		Msg("voyage report loaded")

	return report, nil
}

// ParseVoyageReport decodes and validates a voyage report.
func ParseVoyageReport(data []byte, format Format) (*VoyageReport, error) {
	var report VoyageReport
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("parsing voyage report YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("parsing voyage report JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := report.Validate(); err != nil {
		return nil, err
	}
	return &report, nil
}

// Validate checks that the ship type and every fuel type are recognised and
// that at least one fuel is listed. Numeric ranges are left to the rating
// pipeline.
func (r *VoyageReport) Validate() error {
	if _, err := cii.ParseShipType(r.ShipType); err != nil {
		return fmt.Errorf("ship_type: %w", err)
	}
	if len(r.Fuel) == 0 {
		return fmt.Errorf("fuel: %w: at least one fuel record is required", cii.ErrInvalidInput)
	}
	for i, f := range r.Fuel {
		if _, err := cii.ParseFuelType(f.Type); err != nil {
			return fmt.Errorf("fuel[%d].type: %w", i, err)
		}
	}
	return nil
}

// Ship returns the pipeline ship value. Call Validate first; an invalid
// ship type yields cii.ShipTypeUnknown.
func (r *VoyageReport) Ship() cii.Ship {
	st, _ := cii.ParseShipType(r.ShipType)
	return cii.Ship{
		Type:              st,
		DeadweightTonnage: r.DeadweightTonnage,
		GrossTonnage:      r.GrossTonnage,
	}
}

// Consumptions returns the fuel records as pipeline inputs.
func (r *VoyageReport) Consumptions() []cii.FuelConsumption {
	out := make([]cii.FuelConsumption, 0, len(r.Fuel))
	for _, f := range r.Fuel {
		ft, _ := cii.ParseFuelType(f.Type)
		out = append(out, cii.FuelConsumption{FuelType: ft, Grams: f.Grams})
	}
	return out
}

// Package engine runs the CII rating pipeline for voyage reports and
// derives the compliance summary shown to users.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/ingest"
	"github.com/etivemor/ciicalc/internal/logging"
)

// Assessment is the rated outcome of one voyage report.
type Assessment struct {
	ShipName    string                `json:"ship_name,omitempty"`
	IMONumber   string                `json:"imo_number,omitempty"`
	Ship        cii.Ship              `json:"ship"`
	DistanceNM  float64               `json:"distance_nm"`
	TargetYear  int                   `json:"target_year"`
	Fuel        []cii.FuelConsumption `json:"fuel"`
	Result      cii.CalculationResult `json:"result"`
	Summary     Summary               `json:"summary"`
	TraceID     string                `json:"trace_id,omitempty"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// Engine rates voyage reports.
type Engine struct {
	now func() time.Time
}

// New creates an Engine using the wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithTime creates an Engine with a custom clock, for tests.
func NewWithTime(nowFunc func() time.Time) *Engine {
	return &Engine{now: nowFunc}
}

// Rate validates report, runs the rating pipeline and summarises the
// outcome. Pipeline errors are returned wrapped; the core sentinels remain
// reachable through errors.Is.
func (e *Engine) Rate(ctx context.Context, report ingest.VoyageReport) (*Assessment, error) {
	log := logging.FromContext(ctx)
	start := e.now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "rate").
		Str("ship_type", report.ShipType).
		Int("target_year", report.TargetYear).
		Int("fuel_count", len(report.Fuel)).
		Msg("starting CII rating")

	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("invalid voyage report: %w", err)
	}

	ship := report.Ship()
	fuel := report.Consumptions()
	result, err := cii.CalculateForShip(ship, report.DistanceNM, fuel, report.TargetYear)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "rate").
			Str("ship_type", ship.Type.String()).
			Err(err).
			Msg("CII calculation failed")
		return nil, fmt.Errorf("calculating CII: %w", err)
	}

	summary := Summarize(result)
	if !summary.HasMeasuredYear {
		log.Warn().
			Ctx(ctx).
			Str("component", "engine").
			Int("target_year", report.TargetYear).
			Msg("target year is outside the regulatory window, no year is measured")
	}

	assessment := &Assessment{
		ShipName:    report.ShipName,
		IMONumber:   report.IMONumber,
		Ship:        ship,
		DistanceNM:  report.DistanceNM,
		TargetYear:  report.TargetYear,
		Fuel:        fuel,
		Result:      result,
		Summary:     summary,
		TraceID:     logging.TraceIDFromContext(ctx),
		GeneratedAt: start,
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "rate").
		Str("ship_type", ship.Type.String()).
		Str("measured_rating", summary.MeasuredRating.String()).
		Float64("attained_cii", summary.AttainedCII).
		Bool("corrective_action_required", summary.CorrectiveActionRequired).
		Dur("duration_ms", e.now().Sub(start)).
		Msg("CII rating complete")

	return assessment, nil
}

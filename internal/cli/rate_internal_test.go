package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/engine"
	"github.com/etivemor/ciicalc/internal/ingest"
	"github.com/etivemor/ciicalc/internal/report"
)

type failingCloser struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func stubOutputFile(t *testing.T, w io.WriteCloser) {
	t.Helper()
	orig := createOutputFile
	createOutputFile = func(string) (io.WriteCloser, error) { return w, nil }
	t.Cleanup(func() { createOutputFile = orig })
}

func ratedAssessment(t *testing.T) *engine.Assessment {
	t.Helper()
	a, err := engine.New().Rate(context.Background(), ingest.VoyageReport{
		ShipType:     "roro_passenger_ship",
		GrossTonnage: 25000,
		DistanceNM:   150000,
		TargetYear:   2019,
		Fuel:         []ingest.FuelRecord{{Type: "diesel", Grams: 1.25e10}},
	})
	require.NoError(t, err)
	return a
}

func TestWriteReport_OutFileClose(t *testing.T) {
	tests := []struct {
		name     string
		closeErr error
		wantErr  string
	}{
		{name: "close succeeds"},
		{name: "close fails", closeErr: errors.New("disk full"), wantErr: "closing output file report.json: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &failingCloser{closeErr: tt.closeErr}
			stubOutputFile(t, out)

			cmd := &cobra.Command{}
			var stderr bytes.Buffer
			cmd.SetErr(&stderr)

			err := writeReport(cmd, "report.json", report.FormatJSON, ratedAssessment(t), 4)
			assert.True(t, out.closed)
			assert.Contains(t, out.String(), `"ship_type"`)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.NotContains(t, stderr.String(), "Report written")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stderr.String(), "Report written to report.json")
		})
	}
}

func TestCorrectiveActionTrigger(t *testing.T) {
	tests := []struct {
		name    string
		summary engine.Summary
		want    string
	}{
		{
			name:    "consecutive D",
			summary: engine.Summary{ConsecutiveDYears: 3, RatingCounts: map[cii.Rating]int{cii.RatingD: 3}},
			want:    "rated D for 3 consecutive years",
		},
		{
			name:    "single E",
			summary: engine.Summary{RatingCounts: map[cii.Rating]int{cii.RatingC: 11, cii.RatingE: 1}},
			want:    "rated E in 1 of 12 years",
		},
		{
			name:    "E with D run",
			summary: engine.Summary{ConsecutiveDYears: 3, RatingCounts: map[cii.Rating]int{cii.RatingD: 3, cii.RatingE: 2}},
			want:    "rated E in 2 of 12 years",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, correctiveActionTrigger(tt.summary))
		})
	}
}

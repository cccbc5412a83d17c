package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etivemor/ciicalc/internal/engine"
)

func renderJSON(w io.Writer, a *engine.Assessment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderNDJSON writes one YearResult per line.
func renderNDJSON(w io.Writer, a *engine.Assessment) error {
	enc := json.NewEncoder(w)
	for _, yr := range a.Result.Results {
		if err := enc.Encode(yr); err != nil {
			return fmt.Errorf("encoding year %d: %w", yr.Year, err)
		}
	}
	return nil
}

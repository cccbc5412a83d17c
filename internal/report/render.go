package report

import (
	"fmt"
	"io"

	"github.com/etivemor/ciicalc/internal/engine"
)

// DefaultPrecision is the number of decimals used for intensities.
const DefaultPrecision = 4

// Options tune rendering.
type Options struct {
	// Precision is the number of decimals for intensities and ratios.
	Precision int
}

// Render writes a using format with default options.
func Render(w io.Writer, format Format, a *engine.Assessment) error {
	return RenderWithOptions(w, format, a, Options{Precision: DefaultPrecision})
}

// RenderWithOptions writes a using format.
func RenderWithOptions(w io.Writer, format Format, a *engine.Assessment, opts Options) error {
	if a == nil {
		return fmt.Errorf("%w: nil assessment", ErrNothingToRender)
	}

	switch format {
	case FormatTable:
		return renderTable(w, a, opts)
	case FormatJSON:
		return renderJSON(w, a)
	case FormatNDJSON:
		return renderNDJSON(w, a)
	case FormatXLSX:
		return renderXLSX(w, a)
	case FormatPDF:
		return renderPDF(w, a, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ErrNothingToRender is returned when Render is given no assessment.
const ErrNothingToRender = constError("nothing to render")

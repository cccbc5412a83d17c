// Package report renders CII assessments for people and machines.
package report

import (
	"fmt"
	"strings"
)

// Format is an output format for Render.
type Format string

const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatXLSX   Format = "xlsx"
	FormatPDF    Format = "pdf"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
const ErrUnknownFormat = constError("unknown output format")

type constError string

func (e constError) Error() string { return string(e) }

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatNDJSON, FormatXLSX, FormatPDF}
}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want table, json, ndjson, xlsx or pdf)", ErrUnknownFormat, s)
}

// Binary reports whether the format produces a binary document that should
// be written to a file rather than a terminal.
func (f Format) Binary() bool {
	return f == FormatXLSX || f == FormatPDF
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sections of config.yaml that an overlay may replace.
const (
	keyOutput      = "output"
	keyLogging     = "logging"
	keyCalculation = "calculation"
)

// overlaySections is the set of keys ShallowMergeYAML applies; any other
// key in an overlay file is skipped.
//
//nolint:gochecknoglobals // Immutable lookup table.
var overlaySections = map[string]bool{
	keyOutput:      true,
	keyLogging:     true,
	keyCalculation: true,
}

// ShallowMergeYAML applies the sections found in the YAML file at
// overlayPath to target. A section named in the overlay replaces the whole
// section in target; sections the overlay omits keep their values.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("config overlay: nil target")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading config overlay %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config overlay %s: %w", overlayPath, err)
	}

	for key, value := range overlay {
		if !overlaySections[key] {
			continue
		}

		if err = applySection(target, key, &value); err != nil {
			return fmt.Errorf("config overlay section %q: %w", key, err)
		}
	}

	return nil
}

// applySection decodes node into a zero section value before assigning it,
// so fields the overlay leaves out fall back to zero rather than to target.
func applySection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyOutput:
		var v OutputConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
		return nil
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	case keyCalculation:
		var v CalculationConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Calculation = v
		return nil
	default:
		return fmt.Errorf("unknown section %q", key)
	}
}

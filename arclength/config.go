package arclength

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	// DefaultMaxDeltaK is the default largest curvature change allowed between adjacent samples.
	DefaultMaxDeltaK = 0.01
	// DefaultMaxSegmentLength is the default largest arc length allowed between adjacent samples.
	DefaultMaxSegmentLength = 0.25
	// DefaultMaxDepth is the default cap on the bisection depth.
	DefaultMaxDepth = 30

	// maxAllowedDepth bounds MaxDepth. Bisecting [0, 1] more than this many times no longer
	// produces distinct float64 parameters.
	maxAllowedDepth = 64
)

// Config holds the accuracy bounds used when sampling a curve. A zero field means the default.
type Config struct {
	MaxDeltaK        float64 `json:"max_delta_k,omitempty"`
	MaxSegmentLength float64 `json:"max_segment_length,omitempty"`
	MaxDepth         int     `json:"max_depth,omitempty"`
}

// DefaultConfig returns the config used when none is given.
func DefaultConfig() Config {
	return Config{
		MaxDeltaK:        DefaultMaxDeltaK,
		MaxSegmentLength: DefaultMaxSegmentLength,
		MaxDepth:         DefaultMaxDepth,
	}
}

// Validate ensures all parts of the config are valid. Every invalid field is reported.
func (cfg Config) Validate(path string) error {
	var errs error
	if math.IsNaN(cfg.MaxDeltaK) || cfg.MaxDeltaK < 0 {
		errs = multierr.Append(errs, errors.Errorf("%s: max_delta_k must be a non-negative number, got %v", path, cfg.MaxDeltaK))
	}
	if math.IsNaN(cfg.MaxSegmentLength) || cfg.MaxSegmentLength < 0 {
		errs = multierr.Append(errs,
			errors.Errorf("%s: max_segment_length must be a non-negative number, got %v", path, cfg.MaxSegmentLength))
	}
	if cfg.MaxDepth < 0 || cfg.MaxDepth > maxAllowedDepth {
		errs = multierr.Append(errs,
			errors.Errorf("%s: max_depth must be between 0 and %d, got %d", path, maxAllowedDepth, cfg.MaxDepth))
	}
	return errs
}

// withDefaults fills zero fields from DefaultConfig.
func (cfg Config) withDefaults() Config {
	if cfg.MaxDeltaK == 0 {
		cfg.MaxDeltaK = DefaultMaxDeltaK
	}
	if cfg.MaxSegmentLength == 0 {
		cfg.MaxSegmentLength = DefaultMaxSegmentLength
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

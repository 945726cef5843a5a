package cli

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/pathparam/arclength"
	"go.viam.com/pathparam/curve"
	"go.viam.com/pathparam/utils"
)

// PoseConfig is a planar pose. The heading is in degrees.
type PoseConfig struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	HeadingDegs float64 `json:"heading_degs"`
}

// SplineConfig describes a quintic Hermite spline between two poses.
type SplineConfig struct {
	From *PoseConfig `json:"from"`
	To   *PoseConfig `json:"to"`
}

// Validate ensures all parts of the config are valid.
func (cfg *SplineConfig) Validate(path string) error {
	var errs error
	if cfg.From == nil {
		errs = multierr.Append(errs, errors.Errorf("%s: missing from pose", path))
	}
	if cfg.To == nil {
		errs = multierr.Append(errs, errors.Errorf("%s: missing to pose", path))
	}
	if errs == nil && cfg.From.X == cfg.To.X && cfg.From.Y == cfg.To.Y {
		errs = errors.Errorf("%s: from and to must be different positions", path)
	}
	return errs
}

// Spline builds the configured curve.
func (cfg *SplineConfig) Spline() *curve.QuinticHermite {
	return curve.NewQuinticHermiteFromPoses(
		cfg.From.X, cfg.From.Y, utils.DegToRad(cfg.From.HeadingDegs),
		cfg.To.X, cfg.To.Y, utils.DegToRad(cfg.To.HeadingDegs),
	)
}

// Config is the file format accepted by --config.
type Config struct {
	Sampler arclength.Config `json:"sampler"`
	Curve   *SplineConfig    `json:"curve,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate() error {
	errs := cfg.Sampler.Validate("sampler")
	if cfg.Curve != nil {
		errs = multierr.Append(errs, cfg.Curve.Validate("curve"))
	}
	return errs
}

func readConfig(path string) (*Config, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file %q", path)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse config file %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %q", path)
	}
	return &cfg, nil
}

// parsePose parses "x,y,heading_degrees".
func parsePose(raw string) (*PoseConfig, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return nil, errors.Errorf("pose %q does not follow the format: x,y,heading_degrees", raw)
	}
	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number in pose %q", raw)
		}
		values[i] = v
	}
	return &PoseConfig{X: values[0], Y: values[1], HeadingDegs: values[2]}, nil
}

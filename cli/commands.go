package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"go.viam.com/pathparam/arclength"
	"go.viam.com/pathparam/curve"
	"go.viam.com/pathparam/logging"
	"go.viam.com/pathparam/quadrature"
	"go.viam.com/pathparam/utils"
)

// session is the curve and table every command works on.
type session struct {
	logger  logging.Logger
	spline  *curve.QuinticHermite
	reparam *arclength.Reparameterizer
}

func newSession(c *cli.Context) (*session, error) {
	logger := logging.NewBlankLogger("arclen")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	level, err := logging.LevelFromString(c.String(flagLogLevel))
	if err != nil {
		return nil, err
	}
	if c.Bool(flagDebug) {
		level = logging.DEBUG
	}
	logger.SetLevel(level)

	cfg := &Config{}
	if path := c.String(flagConfig); path != "" {
		if cfg, err = readConfig(path); err != nil {
			return nil, err
		}
	}

	splineCfg := SplineConfig{}
	if cfg.Curve != nil {
		splineCfg = *cfg.Curve
	}
	if splineCfg.From == nil || c.IsSet(flagFrom) {
		from, err := parsePose(c.String(flagFrom))
		if err != nil {
			return nil, err
		}
		splineCfg.From = from
	}
	if splineCfg.To == nil || c.IsSet(flagTo) {
		to, err := parsePose(c.String(flagTo))
		if err != nil {
			return nil, err
		}
		splineCfg.To = to
	}
	if err := splineCfg.Validate("curve"); err != nil {
		return nil, err
	}

	logger.Debugw("building spline", "from", splineCfg.From, "to", splineCfg.To, "sampler", cfg.Sampler)
	spline := splineCfg.Spline()
	reparam, err := arclength.NewReparameterizer(spline, cfg.Sampler, logger.Sublogger("sampler"))
	if err != nil {
		return nil, errors.Wrap(err, "could not build arc length table")
	}
	return &session{logger: logger, spline: spline, reparam: reparam}, nil
}

// LengthAction prints the total arc length of the spline.
func LengthAction(c *cli.Context) error {
	sess, err := newSession(c)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "total length: %.6f", sess.reparam.TotalLength())
	printf(c.App.Writer, "samples: %d", sess.reparam.Len())
	return nil
}

// TableAction prints the sample table with a summary of the segment lengths, and optionally a
// histogram of them.
func TableAction(c *cli.Context) error {
	sess, err := newSession(c)
	if err != nil {
		return err
	}

	samples := sess.reparam.Samples()
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "S", "T", "Segment"})
	segments := make([]float64, 0, len(samples)-1)
	for i, sample := range samples {
		segment := ""
		if i > 0 {
			length := sample.S - samples[i-1].S
			segments = append(segments, length)
			segment = fmt.Sprintf("%.6f", length)
		}
		t.AppendRow(table.Row{i, fmt.Sprintf("%.6f", sample.S), fmt.Sprintf("%.9f", sample.T), segment})
	}

	mean, err := stats.Mean(segments)
	if err != nil {
		return err
	}
	longest, err := stats.Max(segments)
	if err != nil {
		return err
	}
	t.AppendFooter(table.Row{"", "", "mean / max", fmt.Sprintf("%.6f / %.6f", mean, longest)})
	printf(c.App.Writer, "%s", t.Render())

	if bins := c.Int(flagBins); bins > 0 {
		printf(c.App.Writer, "segment lengths:")
		if err := histogram.Fprint(c.App.Writer, histogram.Hist(bins, segments), histogram.Linear(histogramWidth)); err != nil {
			return err
		}
	}
	return nil
}

// QueryAction converts each --s value to a spline parameter.
func QueryAction(c *cli.Context) error {
	sess, err := newSession(c)
	if err != nil {
		return err
	}
	lengths := c.Float64Slice(flagS)
	params, err := arclength.ReparamAll(c.Context, sess.reparam, lengths)
	if err != nil {
		return err
	}
	for i, s := range lengths {
		printf(c.App.Writer, "s=%g t=%.9f", s, params[i])
	}
	return nil
}

// ResampleAction prints the spline state every --step units of arc length.
func ResampleAction(c *cli.Context) error {
	sess, err := newSession(c)
	if err != nil {
		return err
	}
	points, err := arclength.Resample(sess.spline, sess.reparam, c.Float64(flagStep))
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Dist", "T", "X", "Y", "Heading", "Curvature"})
	for _, p := range points {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.3f", p.Dist),
			fmt.Sprintf("%.6f", p.T),
			fmt.Sprintf("%.3f", p.Position.X),
			fmt.Sprintf("%.3f", p.Position.Y),
			fmt.Sprintf("%.2f", utils.RadToDeg(p.Heading)),
			fmt.Sprintf("%.5f", p.Curvature),
		})
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

// CheckAction compares the sampled table against an independently integrated reference at
// evenly spaced arc lengths and fails if they disagree by more than --tolerance.
func CheckAction(c *cli.Context) error {
	sess, err := newSession(c)
	if err != nil {
		return err
	}
	reference, err := quadrature.New(sess.spline, c.Int(flagNodes))
	if err != nil {
		return err
	}

	limit := math.Min(sess.reparam.TotalLength(), reference.TotalLength())
	queries := floats.Span(make([]float64, checkQueries), 0, limit)
	sampled, err := arclength.ReparamAll(c.Context, sess.reparam, queries)
	if err != nil {
		return err
	}
	diffs := lo.Map(queries, func(s float64, i int) float64 {
		return math.Abs(sampled[i] - reference.Reparam(s))
	})

	worst, err := stats.Max(diffs)
	if err != nil {
		return err
	}
	mean, err := stats.Mean(diffs)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "sampled length: %.9f", sess.reparam.TotalLength())
	printf(c.App.Writer, "reference length: %.9f", reference.TotalLength())
	printf(c.App.Writer, "parameter error: max %.3e mean %.3e over %d queries", worst, mean, len(queries))

	if tolerance := c.Float64(flagTolerance); worst > tolerance {
		return errors.Errorf("max parameter error %.3e exceeds tolerance %.3e", worst, tolerance)
	}
	return nil
}

// PlotAction writes a plot of the parameter against arc length, with the sample table overlaid.
func PlotAction(c *cli.Context) error {
	sess, err := newSession(c)
	if err != nil {
		return err
	}
	n := c.Int(flagPoints)
	if n < 2 {
		return errors.Errorf("need at least 2 points to plot, got %d", n)
	}

	lengths := floats.Span(make([]float64, n), 0, sess.reparam.TotalLength())
	curvePts := make(plotter.XYs, n)
	for i, s := range lengths {
		curvePts[i].X = s
		curvePts[i].Y = sess.reparam.Reparam(s)
	}
	samples := sess.reparam.Samples()
	samplePts := make(plotter.XYs, len(samples))
	for i, sample := range samples {
		samplePts[i].X = sample.S
		samplePts[i].Y = sample.T
	}

	p := plot.New()
	p.Title.Text = "arc length parameterization"
	p.X.Label.Text = "arc length"
	p.Y.Label.Text = "parameter"

	line, err := plotter.NewLine(curvePts)
	if err != nil {
		return err
	}
	scatter, err := plotter.NewScatter(samplePts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(line, scatter)
	p.Legend.Add("t(s)", line)
	p.Legend.Add("samples", scatter)

	out := c.String(flagOut)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return errors.Wrapf(err, "could not save plot to %q", out)
	}
	sess.logger.Infow("wrote plot", "file", out, "samples", len(samples))
	return nil
}

func printf(w io.Writer, format string, a ...interface{}) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, format+"\n", a...)
}

// Package cli contains the arclen command line tool, which builds arc length tables for
// quintic Hermite splines and inspects them.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	flagConfig    = "config"
	flagDebug     = "debug"
	flagLogLevel  = "log-level"
	flagFrom      = "from"
	flagTo        = "to"
	flagS         = "s"
	flagStep      = "step"
	flagTolerance = "tolerance"
	flagNodes     = "nodes"
	flagOut       = "out"
	flagPoints    = "points"
	flagBins      = "bins"

	defaultFrom      = "0,0,0"
	defaultTo        = "30,10,0"
	defaultTolerance = 1e-2
	checkQueries     = 100
	histogramWidth   = 40
)

var app = &cli.App{
	Name:            "arclen",
	Usage:           "build and query arc length parameterizations of planar splines",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "load sampler and curve configuration from `FILE`",
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging, same as --log-level debug",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Value: "info",
			Usage: "log `LEVEL` (debug, info, warn or error)",
		},
		&cli.StringFlag{
			Name:  flagFrom,
			Value: defaultFrom,
			Usage: "start pose of the spline as `X,Y,HEADING_DEGREES`",
		},
		&cli.StringFlag{
			Name:  flagTo,
			Value: defaultTo,
			Usage: "end pose of the spline as `X,Y,HEADING_DEGREES`",
		},
	},
	Commands: []*cli.Command{
		{
			Name:   "length",
			Usage:  "print the total arc length of the spline",
			Action: LengthAction,
		},
		{
			Name:   "table",
			Usage:  "print the sampled (arc length, parameter) table",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  flagBins,
					Usage: "also print a histogram of segment lengths with this many bins",
				},
			},
			Action: TableAction,
		},
		{
			Name:      "query",
			Usage:     "convert arc lengths to spline parameters",
			UsageText: "arclen query --s 1.5 --s 10 [other options]",
			Flags: []cli.Flag{
				&cli.Float64SliceFlag{
					Name:     flagS,
					Required: true,
					Usage:    "arc length to convert, may be repeated",
				},
			},
			Action: QueryAction,
		},
		{
			Name:  "resample",
			Usage: "print the spline state at evenly spaced arc lengths",
			Flags: []cli.Flag{
				&cli.Float64Flag{
					Name:  flagStep,
					Value: 1,
					Usage: "arc length between points",
				},
			},
			Action: ResampleAction,
		},
		{
			Name:  "check",
			Usage: "compare the sampled table against Gauss-Legendre integration",
			Flags: []cli.Flag{
				&cli.Float64Flag{
					Name:  flagTolerance,
					Value: defaultTolerance,
					Usage: "largest allowed parameter difference",
				},
				&cli.IntFlag{
					Name:  flagNodes,
					Usage: "number of Gauss-Legendre nodes, 0 for the default",
				},
			},
			Action: CheckAction,
		},
		{
			Name:  "plot",
			Usage: "plot the parameter against arc length",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagOut,
					Required: true,
					Usage:    "write the plot to `FILE` (.png, .svg or .pdf)",
				},
				&cli.IntFlag{
					Name:  flagPoints,
					Value: 200,
					Usage: "number of evenly spaced arc lengths to plot",
				},
			},
			Action: PlotAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

package main

import (
	"flag"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/alien-invasion/engine"
)

// options holds the command line, applied over the default settings
type options struct {
	width   int
	height  int
	density float64
	lives   int
	bullets int
	seed    int64
	bg      string
	debug   bool
}

// parseFlags parses args into options; defaults come from engine.DefaultSettings
func parseFlags(args []string, output io.Writer) (options, error) {
	defaults := engine.DefaultSettings()

	var opts options
	fs := flag.NewFlagSet("alien-invasion", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.width, "width", defaults.ScreenWidth, "Logical play field width")
	fs.IntVar(&opts.height, "height", defaults.ScreenHeight, "Logical play field height")
	fs.Float64Var(&opts.density, "density", defaults.StarDensity, "Starfield density multiplier")
	fs.IntVar(&opts.lives, "lives", defaults.ShipLimit, "Ships per game")
	fs.IntVar(&opts.bullets, "bullets", defaults.BulletsAllowed, "Bullets allowed on screen at once")
	fs.Int64Var(&opts.seed, "seed", 0, "Starfield random seed, 0 seeds from the clock")
	fs.StringVar(&opts.bg, "bg", defaults.BgColor, "Background color as #rrggbb")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to "+logDir+"/"+logFileName)

	if err := fs.Parse(args); err != nil {
		return opts, errors.Wrap(err, "parse flags")
	}
	if fs.NArg() > 0 {
		return opts, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// settings applies the options to the defaults and validates the result
func (o options) settings() (engine.Settings, error) {
	s := engine.DefaultSettings()
	s.ScreenWidth = o.width
	s.ScreenHeight = o.height
	s.StarDensity = o.density
	s.ShipLimit = o.lives
	s.BulletsAllowed = o.bullets
	s.BgColor = o.bg

	if err := s.Validate(); err != nil {
		return s, errors.Wrap(err, "configuration")
	}
	return s, nil
}

// randSeed returns the configured seed, or a clock-derived one when unset
func (o options) randSeed() int64 {
	if o.seed != 0 {
		return o.seed
	}
	return time.Now().UnixNano()
}

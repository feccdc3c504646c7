package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
	mdwlog "github.com/msto63/dayx/foundation/core/log"
	"github.com/msto63/dayx/foundation/utils/timex"
	"github.com/msto63/dayx/pkg/core/cache"
	"github.com/msto63/dayx/pkg/core/config"
	"github.com/msto63/dayx/pkg/core/logging"
)

// Options wires the command tree to its environment
type Options struct {
	// Clock drives "now" and the local zone; the system clock when nil
	Clock timex.Clock

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Config skips discovery when set
	Config *config.Config

	// Parses memoizes argument parsing across invocations
	Parses *cache.ParseCache
}

// app is the state shared by all commands of one invocation
type app struct {
	opts Options

	cfgFile string
	verbose bool
	format  string
	zone    string

	cfg    *config.Config
	logger *mdwlog.Logger
	cal    *timex.Calendar

	zoneHint timex.Zone
	hasZone  bool
}

// Execute runs the dayx command tree against the process environment
func Execute() error {
	root := NewRootCmd(Options{})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// NewRootCmd builds a fresh command tree
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Clock == nil {
		opts.Clock = timex.SystemClock()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "dayx",
		Short: "dayx - calendar-aware date-time toolkit",
		Long: `dayx parses, shifts, compares and renders date-time values.

Values are instants in UTC. Month and year arithmetic works on UTC
calendar fields and shorter units are fixed durations. Start and end of
a unit use the host time zone. The zone hint of a value (see --zone)
only changes the "local" rendering and the wall clock that series and
cron schedules step in.

Output formats are iso, utc, gmt, array, local, string or a strftime
template such as "%Y-%m-%d".

Examples:
  dayx parse "2019-01-25T00:00:00+08:00"
  dayx add 2023-01-31 1 month
  dayx diff 2023-05-20 2023-05-15 day
  dayx series 2023-01-31 month --count 4`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetIn(opts.In)
	rootCmd.SetOut(opts.Out)
	rootCmd.SetErr(opts.Err)

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format: iso|utc|gmt|array|local|string|<strftime>")
	rootCmd.PersistentFlags().StringVarP(&a.zone, "zone", "z", "", "zone hint for output, e.g. +08:00, -5 or Europe/Berlin")

	rootCmd.AddCommand(
		newParseCmd(a),
		newEpochCmd(a),
		newInspectCmd(a),
		newAddCmd(a, false),
		newAddCmd(a, true),
		newBoundaryCmd(a, false),
		newBoundaryCmd(a, true),
		newDiffCmd(a),
		newCompareCmd(a),
		newBetweenCmd(a),
		newSeriesCmd(a),
		newCronCmd(a),
		newObjectCmd(a),
		newConfigCmd(a),
		newShellCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := a.opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Discover(a.cfgFile); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level := cfg.General.LogLevel
	if a.verbose {
		level = "debug"
	}
	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:   "dayx",
		Level:  level,
		Format: cfg.General.LogFormat,
		Output: a.opts.Err,
	}).WithField("command", cmd.Name())

	a.cal = timex.NewCalendar(a.opts.Clock)

	if a.format == "" {
		a.format = cfg.Display.Format
	}
	if err := checkFormat(a.format); err != nil {
		return err
	}

	if a.zone != "" {
		zone, err := timex.ParseZone(a.zone)
		if err != nil {
			return err
		}
		a.zoneHint, a.hasZone = zone, true
	} else {
		a.zoneHint, a.hasZone = cfg.DisplayZone()
	}

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"source": cfg.Source(),
		"format": a.format,
		"zone":   a.zone,
	})
	return nil
}

// value parses a command argument; "now" is the calendar's current time
func (a *app) value(text string) (timex.Value, error) {
	if strings.EqualFold(strings.TrimSpace(text), "now") {
		return a.cal.Now(), nil
	}

	parse := a.cal.Parse
	if a.opts.Parses != nil {
		parse = func(text string) (timex.Value, error) {
			return a.opts.Parses.Parse(a.cal, text)
		}
	}

	v, err := parse(text)
	if err != nil {
		a.logger.Debug("parse failed", mdwlog.String("input", text), mdwlog.Err(err))
		return timex.Value{}, err
	}
	a.logger.Debug("parsed value", mdwlog.String("input", text), mdwlog.String("iso", v.ToISO()))
	return v, nil
}

// render prints v in the selected output format and zone
func (a *app) render(v timex.Value) string {
	if a.hasZone {
		v = v.WithZone(a.zoneHint)
	}

	switch strings.ToLower(a.format) {
	case "iso":
		return v.ToISO()
	case "utc":
		return v.ToUTCString()
	case "gmt":
		return v.ToGMT()
	case "array":
		return v.ToArray()
	case "local":
		return a.cal.ToLocalString(v)
	case "string":
		return v.String()
	default:
		return v.Format(a.format)
	}
}

func (a *app) println(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}

func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case "iso", "utc", "gmt", "array", "local", "string":
		return nil
	}
	if strings.Contains(format, "%") {
		return nil
	}
	return mdwerror.Newf("unknown output format %q", format).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("dayx").
		WithDetail("input", format)
}

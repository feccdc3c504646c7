package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/dayx/foundation/core/log"
	"github.com/msto63/dayx/foundation/utils/timex"
	"github.com/msto63/dayx/internal/series"
)

func newSeriesCmd(a *app) *cobra.Command {
	var (
		interval int
		count    int
		rule     string
	)

	cmd := &cobra.Command{
		Use:   "series <start> [unit]",
		Short: "Expand a recurrence from a start value",
		Long: `Expands a recurrence. Either give a unit with --interval and --count,
or an RFC 5545 rule with --rrule:

  dayx series 2023-05-15T09:00:00Z day --interval 2 --count 3
  dayx series 2023-05-15T09:00:00Z --rrule "FREQ=WEEKLY;BYDAY=MO,FR" --count 4

Monthly series follow RFC 5545 and skip months that lack the start day.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := a.value(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Series.DefaultCount
			}

			exp := series.New(a.cal, a.cfg.Series.MaxCount)

			var values []timex.Value
			if rule != "" {
				values, err = exp.ExpandRule(rule, start, count)
			} else {
				if len(args) < 2 {
					return cmd.Help()
				}
				unit, perr := timex.ParseUnit(args[1])
				if perr != nil {
					return perr
				}
				values, err = exp.Expand(start, unit, interval, count)
			}
			if err != nil {
				return err
			}

			a.logger.Debug("series expanded", mdwlog.Int("occurrences", len(values)))
			for _, v := range values {
				a.println(cmd, a.render(v))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&interval, "interval", "i", 1, "units between occurrences")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of occurrences (default from config)")
	cmd.Flags().StringVar(&rule, "rrule", "", "RFC 5545 recurrence rule")
	return cmd
}

func newCronCmd(a *app) *cobra.Command {
	var (
		from  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "cron <spec>",
		Short: "List the next firing times of a cron expression",
		Long: `Lists the next firing times of a standard five-field cron expression
after --from (default: now), evaluated in the zone of --from or --zone.

  dayx cron "0 9 * * 1-5" --from 2023-05-19T10:00:00Z --count 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" {
				from = "now"
			}
			start, err := a.value(from)
			if err != nil {
				return err
			}
			if a.hasZone {
				start = start.WithZone(a.zoneHint)
			}
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Series.DefaultCount
			}

			values, err := series.New(a.cal, a.cfg.Series.MaxCount).NextCron(args[0], start, count)
			if err != nil {
				return err
			}
			for _, v := range values {
				a.println(cmd, a.render(v))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start value (default: now)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of firing times (default from config)")
	return cmd
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
	mdwlog "github.com/msto63/dayx/foundation/core/log"
	"github.com/msto63/dayx/foundation/utils/timex"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text and print the value",
		Long: `Parses ISO 8601 / RFC 3339, RFC 2822, common zoned and zoneless
layouts and date-only forms. Zoneless text is read as UTC.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.value(args[0])
			if err != nil {
				return err
			}
			a.println(cmd, a.render(v))
			return nil
		},
	}
}

func newEpochCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "epoch <n>",
		Short: "Build a value from 10-digit seconds or 13-digit milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return mdwerror.Wrap(err, fmt.Sprintf("epoch %q", args[0])).
					WithCode(mdwerror.CodeInvalidTimestamp).
					WithOperation("dayx.epoch").
					WithDetail("input", args[0])
			}
			v, err := a.cal.FromEpoch(n)
			if err != nil {
				return err
			}
			a.println(cmd, a.render(v))
			return nil
		},
	}
}

func newAddCmd(a *app, subtract bool) *cobra.Command {
	use, short := "add", "Add a quantity of units"
	if subtract {
		use, short = "subtract", "Subtract a quantity of units"
	}

	return &cobra.Command{
		Use:   use + " <text> <quantity> <unit>",
		Short: short,
		Long: short + `.

Units: year|y, month|M, week|w, day|d, hour|h, minute|m, second|s,
millisecond|ms. Months clamp to the last day of the target month,
so 2023-01-31 + 1 month is 2023-02-28.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.value(args[0])
			if err != nil {
				return err
			}
			quantity, err := quantityArg(args[1])
			if err != nil {
				return err
			}
			unit, err := timex.ParseUnit(args[2])
			if err != nil {
				return err
			}

			var out timex.Value
			if subtract {
				out = timex.Subtract(v, quantity, unit)
			} else {
				out = timex.Add(v, quantity, unit)
			}
			a.logger.Debug(use, mdwlog.Fields{"quantity": quantity, "unit": unit.String()})
			a.println(cmd, a.render(out))
			return nil
		},
	}
}

func newBoundaryCmd(a *app, end bool) *cobra.Command {
	use, short := "startof", "Print the first instant of the enclosing unit"
	if end {
		use, short = "endof", "Print the last instant of the enclosing unit"
	}

	return &cobra.Command{
		Use:   use + " <text> <unit>",
		Short: short,
		Long: short + `.

Boundaries are computed in the local zone; weeks start on Sunday.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.value(args[0])
			if err != nil {
				return err
			}
			unit, err := timex.ParseUnit(args[1])
			if err != nil {
				return err
			}

			if end {
				v = a.cal.EndOf(v, unit)
			} else {
				v = a.cal.StartOf(v, unit)
			}
			a.println(cmd, a.render(v))
			return nil
		},
	}
}

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b> <unit>",
		Short: "Print a - b in whole units",
		Long: `Prints a - b in whole units, truncated toward zero. Year and month
differences compare calendar fields.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.pair(args[0], args[1])
			if err != nil {
				return err
			}
			unit, err := timex.ParseUnit(args[2])
			if err != nil {
				return err
			}
			a.println(cmd, strconv.FormatInt(timex.Diff(x, y, unit), 10))
			return nil
		},
	}
}

func newCompareCmd(a *app) *cobra.Command {
	var unitFlag string

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print whether a is before, same as or after b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.pair(args[0], args[1])
			if err != nil {
				return err
			}

			var result int
			if unitFlag == "" {
				result = x.Compare(y)
			} else {
				unit, err := timex.ParseUnit(unitFlag)
				if err != nil {
					return err
				}
				switch {
				case a.cal.IsBeforeUnit(x, y, unit):
					result = -1
				case a.cal.IsAfterUnit(x, y, unit):
					result = 1
				}
			}

			switch result {
			case -1:
				a.println(cmd, "before")
			case 1:
				a.println(cmd, "after")
			default:
				a.println(cmd, "same")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "", "compare at unit granularity")
	return cmd
}

func newBetweenCmd(a *app) *cobra.Command {
	var unitFlag string

	cmd := &cobra.Command{
		Use:   "between <x> <start> <end>",
		Short: "Print whether x lies strictly between start and end",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.value(args[0])
			if err != nil {
				return err
			}
			start, end, err := a.pair(args[1], args[2])
			if err != nil {
				return err
			}

			var inside bool
			if unitFlag == "" {
				inside = x.IsBetween(start, end)
			} else {
				unit, err := timex.ParseUnit(unitFlag)
				if err != nil {
					return err
				}
				inside = a.cal.IsBetweenUnit(x, start, end, unit)
			}
			a.println(cmd, strconv.FormatBool(inside))
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "", "compare at unit granularity")
	return cmd
}

func (a *app) pair(first, second string) (timex.Value, timex.Value, error) {
	x, err := a.value(first)
	if err != nil {
		return timex.Value{}, timex.Value{}, err
	}
	y, err := a.value(second)
	if err != nil {
		return timex.Value{}, timex.Value{}, err
	}
	return x, y, nil
}

func quantityArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, mdwerror.Wrap(err, fmt.Sprintf("quantity %q", s)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("dayx").
			WithDetail("input", s)
	}
	return n, nil
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/dayx/foundation/utils/timex"
)

func newInspectCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect <text>",
		Short: "Show every field and rendering of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.value(args[0])
			if err != nil {
				return err
			}
			if a.hasZone {
				v = v.WithZone(a.zoneHint)
			}

			color := a.cfg.Display.Color && !plain
			fmt.Fprint(cmd.OutOrStdout(), renderTable(args[0], inspectRows(a.cal, v), color))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable styling")
	return cmd
}

func inspectRows(cal *timex.Calendar, v timex.Value) []row {
	weekdays := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	return []row{
		{"iso", v.ToISO()},
		{"utc", v.ToUTCString()},
		{"gmt", v.ToGMT()},
		{"local", cal.ToLocalString(v)},
		{"array", v.ToArray()},
		{"zone", fmt.Sprintf("%s (%s)", v.Zone(), v.Zone().Kind())},
		{"year", strconv.Itoa(v.Year())},
		{"month", fmt.Sprintf("%d (0-based)", v.Month())},
		{"date", strconv.Itoa(v.Date())},
		{"weekday", fmt.Sprintf("%d %s", v.Weekday(), weekdays[v.Weekday()])},
		{"day of year", strconv.Itoa(v.DayOfYear())},
		{"iso week", strconv.Itoa(v.WeekOfYear())},
		{"time", fmt.Sprintf("%02d:%02d:%02d.%03d", v.Hour(), v.Minute(), v.Second(), v.Millisecond())},
		{"unix", strconv.FormatInt(v.Unix(), 10)},
		{"unix ms", strconv.FormatInt(v.UnixMilli(), 10)},
		{"leap year", strconv.FormatBool(v.IsLeapYear())},
		{"month days", strconv.Itoa(v.DaysInMonth())},
	}
}

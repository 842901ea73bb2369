package options

import (
	"github.com/spf13/cobra"
)

// ScheduleOptions
type ScheduleOptions struct {
	Date string
	Time string
	In   string
}

func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Local date, example: --date="2030-06-16".`)
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Local time, example: --time="18:30".`)
	cmd.Flags().StringVar(&o.In, "in", "",
		`Start relative to now instead of --date and --time, example: --in=2h or --in=1d30m.`)
}

package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/commands/options"
	"tableflip.dev/huddle/pkg/runner/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	ino := &options.InputOptions{}
	var topic string

	cmd := &cobra.Command{
		Use:   "schedule TOPIC",
		Short: "Schedule a video meeting and announce it to the group",
		Example: `
huddle schedule Calculus --date=2030-06-16 --time=18:30
huddle schedule Limits --in=2h
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a topic")
			}
			topic = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := schedule.Schedule{
				Session:   e.session,
				Scheduler: e.scheduler,
				Source:    e.source(cmd, ino),
				Topic:     topic,
				Date:      so.Date,
				Time:      so.Time,
				In:        so.In,
				JSON:      output.JSON,
				Out:       cmd.OutOrStdout(),
			}
			err = s.Do(e.ctx)
			return output.HandleError(err)
		},
	}

	options.AddScheduleArgs(cmd, so)
	options.AddInputArgs(cmd, ino)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

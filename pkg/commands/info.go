package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/commands/options"
	"tableflip.dev/huddle/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and what is stored.",
		Example: `
huddle info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := info.Info{
				Config:  e.config,
				Session: e.session,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(e.ctx)
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

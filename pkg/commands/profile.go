package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/commands/options"
	"tableflip.dev/huddle/pkg/runner/profile"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or set your profile",
		Example: `
huddle profile show
huddle profile set --name=Ada --interest=Calculus
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProfileShow(cmd)
	addProfileSet(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved profile",
		Example: `
huddle profile show
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := profile.Show{
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

func addProfileSet(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}
	ino := &options.InputOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save your name and teaching interest",
		Example: `
huddle profile set --name=Ada --interest=Calculus
huddle profile set
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := profile.Set{
				Session:          e.session,
				Source:           e.source(cmd, ino),
				Name:             po.Name,
				TeachingInterest: po.Interest,
				JSON:             output.JSON,
				Out:              cmd.OutOrStdout(),
			}
			err = s.Do(e.ctx)
			return output.HandleError(err)
		},
	}

	options.AddProfileArgs(cmd, po)
	options.AddInputArgs(cmd, ino)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

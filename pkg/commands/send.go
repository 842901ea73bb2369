package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/commands/options"
	"tableflip.dev/huddle/pkg/runner/send"
)

func addSend(topLevel *cobra.Command) {
	ino := &options.InputOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "send TEXT",
		Short: "Post a message to the group",
		Example: `
huddle send anyone up for limits tonight? notes at https://example.com/limits
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a message")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := send.Send{
				Session: e.session,
				Source:  e.source(cmd, ino),
				Text:    text,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(e.ctx)
			return output.HandleError(err)
		},
	}

	options.AddInputArgs(cmd, ino)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

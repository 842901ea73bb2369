package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/group"
	"tableflip.dev/huddle/pkg/runner/chat"
	"tableflip.dev/huddle/pkg/store"
)

func addChat(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the group chat",
		Long: `Open the group chat. Lines are posted as messages; lines starting
with / are commands, see /help.`,
		Example: `
huddle chat
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := chat.Chat{
				Session:   e.session,
				Scheduler: e.scheduler,
				Input:     e.prompter(cmd),
				Stored:    group.NewSession(e.store, e.logger),
				Logger:    e.logger,
				Out:       cmd.OutOrStdout(),
			}
			if w, ok := e.store.(store.Watcher); ok {
				s.Watcher = w
			}
			return s.Do(e.ctx)
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/commands/options"
	"tableflip.dev/huddle/pkg/runner/group"
)

func addGroup(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Create or show the study group",
		Example: `
huddle group create Study --limit=5
huddle group show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGroupCreate(cmd)
	addGroupShow(cmd)

	topLevel.AddCommand(cmd)
}

func addGroupCreate(topLevel *cobra.Command) {
	gro := &options.GroupOptions{}
	ino := &options.InputOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a group, replacing the stored one",
		Example: `
huddle group create Calculus study --description="weekly problem sets" --limit=6
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a group name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := group.Create{
				Session:     e.session,
				Source:      e.source(cmd, ino),
				Name:        name,
				Description: gro.Description,
				Limit:       gro.Limit,
				JSON:        output.JSON,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(e.ctx)
			return output.HandleError(err)
		},
	}

	options.AddGroupArgs(cmd, gro)
	options.AddInputArgs(cmd, ino)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGroupShow(topLevel *cobra.Command) {
	var showID bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the group and its timeline",
		Example: `
huddle group show
huddle group show --id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := group.Show{
				Session: e.session,
				ShowID:  showID,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(e.ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showID, "id", false, "Show message ids.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/group"
)

// GroupOptions
type GroupOptions struct {
	Description string
	Limit       int
}

func AddGroupArgs(cmd *cobra.Command, o *GroupOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"What the group is about.")
	cmd.Flags().IntVarP(&o.Limit, "limit", "l", group.MinLimit,
		"Maximum number of members, between 2 and 15.")
}

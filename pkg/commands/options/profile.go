package options

import (
	"github.com/spf13/cobra"
)

// ProfileOptions
type ProfileOptions struct {
	Name     string
	Interest string
}

func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Display name shown on your messages.")
	cmd.Flags().StringVar(&o.Interest, "interest", "",
		"Subject you want to teach.")
}

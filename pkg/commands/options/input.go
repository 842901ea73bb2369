package options

import (
	"github.com/spf13/cobra"
)

// InputOptions controls whether a command may stop and ask for input.
type InputOptions struct {
	NoInput bool
}

func AddInputArgs(cmd *cobra.Command, o *InputOptions) {
	cmd.Flags().BoolVar(&o.NoInput, "no-input", false,
		`Never prompt; fail instead when a profile is required.`)
}

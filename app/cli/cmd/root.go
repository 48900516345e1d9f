package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns a new instance of a proteus command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "proteus",
		Short: "proteus is the command line interface to Proteus",
		Run: func(cmd *cobra.Command, args []string) {

		},
	}

	rootCmd.AddCommand(NewResolveCommand())
	rootCmd.AddCommand(NewSubmitCommand())
	rootCmd.AddCommand(NewGetCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewDispatchCommand())
	return rootCmd
}

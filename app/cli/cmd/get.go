package cmd

import (
	"context"
	"log"
	"os"

	"proteus/app/cli/cmd/client"
	"proteus/app/cli/cmd/common"

	"github.com/spf13/cobra"
)

// NewGetCommand returns a new instance of a proteus command
func NewGetCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "get",
		Short: "get the resolved plan of a submitted pipeline",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cli, err := client.New()
			if err != nil {
				log.Fatal(err)
			}

			plan, err := cli.Plan(context.Background(), args[0])
			if err != nil {
				log.Fatal(err)
			}
			common.PrintPlan(os.Stdout, plan, args[0], common.PrintOptions{})
		},
	}
	return command
}

package cmd

import (
	"context"
	"fmt"
	"log"

	"proteus/app/cli/cmd/client"

	"github.com/spf13/cobra"
)

// NewDispatchCommand returns a new instance of a proteus command
func NewDispatchCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "dispatch",
		Short: "publish the plan of a submitted pipeline to the broker",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cli, err := client.New()
			if err != nil {
				log.Fatal(err)
			}

			if err := cli.Dispatch(context.Background(), args[0]); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Pipeline %s dispatched\n", args[0])
		},
	}
	return command
}

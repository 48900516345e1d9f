package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"proteus/app/cli/cmd/client"
	"proteus/app/cli/cmd/common"

	"github.com/spf13/cobra"
)

type submitOpts struct {
	dispatch bool // --dispatch
}

// NewSubmitCommand returns a new instance of a proteus command
func NewSubmitCommand() *cobra.Command {
	var submitOpts submitOpts
	command := &cobra.Command{
		Use:   "submit",
		Short: "submit a pipeline file to the controller",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cli, err := client.New()
			if err != nil {
				log.Fatal(err)
			}

			spec, err := common.LoadSpec(args[0])
			if err != nil {
				log.Fatal(err)
			}

			ctx := context.Background()
			res, err := cli.Submit(ctx, spec)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Pipeline submitted with process ID %s\n", res.ProcessID)
			common.PrintPlan(os.Stdout, res.Plan, res.ProcessID, common.PrintOptions{})

			if submitOpts.dispatch {
				if err := cli.Dispatch(ctx, res.ProcessID); err != nil {
					log.Fatal(err)
				}
				fmt.Printf("Pipeline %s dispatched\n", res.ProcessID)
			}
		},
	}
	command.Flags().BoolVarP(&submitOpts.dispatch, "dispatch", "d", false, "dispatch the plan right after submission")

	return command
}

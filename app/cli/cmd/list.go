package cmd

import (
	"context"
	"log"
	"os"
	"time"

	"proteus/app/cli/cmd/client"
	"proteus/app/cli/cmd/common"

	tm "github.com/buger/goterm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type listOpts struct {
	watch bool // --watch
}

// NewListCommand returns a new instance of a proteus command
func NewListCommand() *cobra.Command {
	var listOpts listOpts
	command := &cobra.Command{
		Use:   "list",
		Short: "list submitted pipelines",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			if listOpts.watch {
				if err := watchList(ctx); err != nil {
					log.Fatal(err)
				}
				return
			}

			cli, err := client.New()
			if err != nil {
				log.Fatal(err)
			}
			pipelines, err := cli.ListPipelines(ctx)
			if err != nil {
				log.Fatal(err)
			}
			common.PrintList(os.Stdout, pipelines, common.PrintOptions{})
		},
	}
	command.Flags().BoolVarP(&listOpts.watch, "watch", "w", false, "refresh the list every second")

	return command
}

func watchList(ctx context.Context) error {
	cli, err := client.New()
	if err != nil {
		return errors.Wrap(err, "cannot create proteus client")
	}
	tm.Clear()
	for {
		pipelines, err := cli.ListPipelines(ctx)
		if err != nil {
			return errors.Wrap(err, "cannot list pipelines")
		}
		tm.MoveCursor(1, 1)
		common.PrintList(tm.Screen, pipelines, common.PrintOptions{})
		tm.Flush()
		time.Sleep(1 * time.Second)
	}
}

package cmd

import (
	"encoding/json"
	"log"
	"os"

	"proteus/app/cli/cmd/common"
	"proteus/pkg/pipeline"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type resolveOpts struct {
	output string // --output
}

// NewResolveCommand returns a new instance of a proteus command
func NewResolveCommand() *cobra.Command {
	var resolveOpts resolveOpts
	command := &cobra.Command{
		Use:   "resolve",
		Short: "resolve a pipeline file locally, without a controller",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			spec, err := common.LoadSpec(args[0])
			if err != nil {
				log.Fatal(err)
			}

			plan, err := pipeline.Resolve(spec)
			if err != nil {
				log.Fatal(err)
			}

			switch resolveOpts.output {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(plan); err != nil {
					log.Fatal(err)
				}
			case "yaml":
				if err := yaml.NewEncoder(os.Stdout).Encode(plan); err != nil {
					log.Fatal(err)
				}
			default:
				common.PrintPlan(os.Stdout, plan, "", common.PrintOptions{})
			}
		},
	}
	command.Flags().StringVarP(&resolveOpts.output, "output", "o", "", "output format, json or yaml")

	return command
}

package common

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"proteus/pkg/api"
	"proteus/pkg/pipeline"
)

// PrintOptions defines print options
type PrintOptions struct{}

// PrintPlan prints the resolved pipeline in the given writer, grouped by
// batches of concurrently runnable steps.
func PrintPlan(w io.Writer, plan api.ResolvedPipeline, pid string, opts PrintOptions) {
	fmt.Fprintln(w)

	// Header
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", plan.Name)
	if pid != "" {
		fmt.Fprintf(tw, "ProcessID:\t%s\n", pid)
	}
	batches := pipeline.Batches(plan)
	fmt.Fprintf(tw, "Batches:\t%d\n", len(batches))
	tw.Flush()
	fmt.Fprintln(w)

	tw.Init(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BATCH\tSTEP\tDEPENDS ON")
	gated := false
	for _, b := range batches {
		label := fmt.Sprintf("%d", b.Seq)
		if b.ContinueOnFailure {
			label += "*"
			gated = true
		}
		for i, s := range b.Steps {
			prefix := "├"
			if i == len(b.Steps)-1 {
				prefix = "└"
			}
			if i > 0 {
				label = ""
			}
			fmt.Fprintf(tw, "%s\t%s %s\t%s\n", label, prefix, s.Name, strings.Join(s.DependsOn, ", "))
		}
	}
	tw.Flush()
	if gated {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Batches marked with * still run after an upstream failure.")
	}
}

// PrintList prints the submitted pipelines in the given writer.
func PrintList(w io.Writer, pipelines []api.PipelineInfo, opts PrintOptions) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROCESS ID\tNAME\tSTATUS")
	for _, p := range pipelines {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ProcessID, p.Name, p.Status)
	}
	tw.Flush()
}

package main

import (
	"fmt"

	"github.com/fwojciec/sitecrawl"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := sitecrawl.RunFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'sitecrawl crawl' to create one.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, sitecrawl.FormatRuns(runs))
	return nil
}

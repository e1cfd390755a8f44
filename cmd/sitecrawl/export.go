package main

import (
	"fmt"

	"github.com/fwojciec/sitecrawl"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	exporter, err := c.Exporter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if sitecrawl.ErrorCode(err) == sitecrawl.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'sitecrawl runs' to see recorded crawls.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		}
		return err
	}

	entries, err := deps.Runs.FindEntries(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs found.")
		return nil
	}

	file := c.ResultFile(run.BaseURL, exporter)
	if err := file.Save(entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(entries), file.Path())
	return nil
}

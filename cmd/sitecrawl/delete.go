package main

import (
	"fmt"

	"github.com/fwojciec/sitecrawl"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitecrawl.Errorf(sitecrawl.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		if sitecrawl.ErrorCode(err) == sitecrawl.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'sitecrawl runs' to see recorded crawls.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}

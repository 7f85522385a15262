package main

import (
	"fmt"

	"github.com/fwojciec/webdigest"
)

// Run executes the manual command.
func (c *ManualCmd) Run(deps *Dependencies) error {
	outcome, err := deps.Pipeline.ProcessManual(deps.Ctx, c.Title, c.Content, c.Tags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdigest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved manual record %d\n", outcome.ID)
	fmt.Fprintf(deps.Stdout, "  Summary: %s\n", outcome.Summary)
	return nil
}

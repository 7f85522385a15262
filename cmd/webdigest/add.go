package main

import (
	"fmt"

	"github.com/fwojciec/webdigest"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	outcome, err := deps.Pipeline.ProcessURL(deps.Ctx, c.URL, c.Tags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdigest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved record %d\n", outcome.ID)
	fmt.Fprintf(deps.Stdout, "  Title:   %s\n", outcome.Title)
	fmt.Fprintf(deps.Stdout, "  Summary: %s\n", outcome.Summary)
	fmt.Fprintf(deps.Stdout, "  Post:    %s\n", outcome.Post)
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/webdigest"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.SearchByTag(deps.Ctx, c.Tag)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdigest.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "No records tagged %q.\n", c.Tag)
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%d  [%s]  %s  %s\n", r.ID, r.Tags, r.Title, r.SourceURL)
	}
	return nil
}

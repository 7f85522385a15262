package main

import (
	"fmt"

	"github.com/fwojciec/webdigest"
)

// Run executes the recent command.
func (c *RecentCmd) Run(deps *Dependencies) error {
	if c.Manual {
		records, err := deps.Records.RecentManual(deps.Ctx, c.Limit)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webdigest.ErrorMessage(err))
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(deps.Stdout, "No manual entries found.")
			return nil
		}
		for _, r := range records {
			fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02"), r.Title)
		}
		return nil
	}

	records, err := deps.Records.RecentSummaries(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdigest.ErrorMessage(err))
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'webdigest add' to create one.")
		return nil
	}
	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02"), r.Title, r.SourceURL)
	}
	return nil
}

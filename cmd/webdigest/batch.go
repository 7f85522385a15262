package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/webdigest/digest"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := readURLFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to process.")
		return nil
	}

	progress := func(p digest.BatchProgress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", p.URL, p.Err)
			return
		}
		fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", p.Completed, p.Total, p.URL)
	}

	result, err := deps.Batch.Run(deps.Ctx, urls, c.Tags, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d, failed %d\n", result.Processed, result.Failed)
	return nil
}

// readURLFile reads one URL per line, skipping blanks and # comments.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}

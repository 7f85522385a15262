package main

import (
	"context"
	"io"

	"github.com/fwojciec/webdigest"
	"github.com/fwojciec/webdigest/digest"
	"github.com/fwojciec/webdigest/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Records  webdigest.RecordService
	Pipeline *digest.Pipeline
	Batch    *digest.BatchRunner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Summarize a web page and store the result"`
	Manual ManualCmd `cmd:"" help:"Summarize hand-entered content and store the result"`
	Batch  BatchCmd  `cmd:"" help:"Summarize every URL listed in a file"`
	Recent RecentCmd `cmd:"" help:"List recently stored records"`
	Search SearchCmd `cmd:"" help:"Search stored records by tag"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URL         string `arg:"" help:"Page URL"`
	Tags        string `short:"t" help:"Comma-joined labels to store with the record"`
	Readability bool   `help:"Use the readability extractor for the raw-HTTP backend"`
}

// ManualCmd is the "manual" subcommand.
type ManualCmd struct {
	Title   string `arg:"" help:"Entry title"`
	Content string `arg:"" help:"Entry content"`
	Tags    string `short:"t" help:"Comma-joined labels to store with the record"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string  `arg:"" type:"existingfile" help:"File with one URL per line"`
	Tags        string  `short:"t" help:"Comma-joined labels applied to every record"`
	Concurrency int     `short:"c" default:"1" help:"Concurrent item limit"`
	Rate        float64 `default:"1" help:"Max requests per second per domain"`
	Readability bool    `help:"Use the readability extractor for the raw-HTTP backend"`
}

// RecentCmd is the "recent" subcommand.
type RecentCmd struct {
	Limit  int  `short:"n" default:"10" help:"Max records to show"`
	Manual bool `help:"Show manual entries instead of summarized pages"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Tag string `arg:"" help:"Tag substring to search for"`
}

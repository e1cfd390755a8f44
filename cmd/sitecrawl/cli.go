package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitecrawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Runs        sitecrawl.RunService
	PageFetcher sitecrawl.PageFetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every request and database write to stderr"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl a website and export its pages"`
	Runs   RunsCmd   `cmd:"" help:"List recorded crawls"`
	Export ExportCmd `cmd:"" help:"Export the results of a recorded crawl"`
	Delete DeleteCmd `cmd:"" help:"Delete a recorded crawl"`
}

// OutputFlags select the export format and file.
type OutputFlags struct {
	Format    string `short:"f" enum:"text,excel" default:"text" help:"Export format (text, excel)"`
	Delimiter string `short:"d" enum:"comma,semicolon" default:"comma" help:"Field delimiter for text export (comma, semicolon)"`
	Output    string `short:"o" help:"Output file name; the extension is added if missing"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL       string        `arg:"" help:"Base URL to start crawling from"`
	Delay     time.Duration `default:"1s" help:"Pause between requests"`
	Timeout   time.Duration `default:"10s" help:"Timeout for each request"`
	UserAgent string        `name:"user-agent" help:"User-Agent header to send"`
	RPS       float64       `name:"rps" default:"0" help:"Maximum requests per second (0 for no limit)"`
	Retries   int           `default:"0" help:"Retries for a failed request, with doubling delays"`
	NoSave    bool          `name:"no-save" help:"Do not record the crawl in history"`

	OutputFlags `embed:""`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int    `short:"n" default:"20" help:"Maximum number of runs to list"`
	URL   string `help:"Only list runs that crawled this page"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID string `arg:"" name:"run-id" help:"Run ID"`

	OutputFlags `embed:""`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" name:"run-id" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}

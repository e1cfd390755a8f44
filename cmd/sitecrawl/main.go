package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitecrawl"
	"github.com/fwojciec/sitecrawl/crawl"
	"github.com/fwojciec/sitecrawl/goquery"
	sitecrawlhttp "github.com/fwojciec/sitecrawl/http"
	crawlslog "github.com/fwojciec/sitecrawl/slog"
	"github.com/fwojciec/sitecrawl/sqlite"
)

func main() {
	// Interrupt stops the crawl; results gathered so far are still exported.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService  sitecrawl.RunService
	PageFetcher sitecrawl.PageFetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitecrawl"),
		kong.Description("Crawl a single website and export its page titles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitecrawl --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	needsDB := !strings.HasPrefix(cmd, "crawl") || !cli.Crawl.NoSave
	if needsDB && m.RunService == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SITECRAWL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.RunService = sqlite.NewRunService(m.DB)
	}
	if needsDB {
		deps.Runs = crawlslog.NewLoggingRunService(m.RunService, deps.Logger)
	}

	if strings.HasPrefix(cmd, "crawl") {
		if m.PageFetcher == nil {
			fetcher := sitecrawlhttp.NewFetcher(
				sitecrawlhttp.WithTimeout(cli.Crawl.Timeout),
				sitecrawlhttp.WithUserAgent(cli.Crawl.UserAgent),
			)
			defer fetcher.Close()

			logger := deps.Logger
			m.PageFetcher = &crawl.Loader{
				Fetcher:     crawlslog.NewLoggingFetcher(fetcher, logger),
				Parser:      goquery.NewParser(),
				RetryDelays: crawl.BackoffDelays(cli.Crawl.Retries),
				Logf: func(format string, args ...any) {
					logger.Warn(fmt.Sprintf(format, args...))
				},
			}
		}
		deps.PageFetcher = crawlslog.NewLoggingPageFetcher(m.PageFetcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SITECRAWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitecrawl.db"
	}
	dir := filepath.Join(home, ".sitecrawl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitecrawl.db")
}

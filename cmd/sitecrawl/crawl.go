package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/sitecrawl"
	"github.com/fwojciec/sitecrawl/crawl"
	"github.com/fwojciec/sitecrawl/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	exporter, err := c.Exporter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	base, err := crawl.ParseBaseURL(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	stdout := &syncWriter{w: deps.Stdout}
	stderr := &syncWriter{w: deps.Stderr}

	engine := crawl.NewEngine(deps.PageFetcher)
	if c.RPS > 0 {
		engine.RateLimiter = crawl.NewDomainLimiter(c.RPS)
	}
	engine.Status = func(message string) {
		fmt.Fprintln(stdout, message)
	}
	engine.Progress = func(count int) {
		fmt.Fprintln(stderr, crawl.FormatProgress(count, engine.Pending()))
	}

	var run *sitecrawl.Run
	if deps.Runs != nil {
		run = &sitecrawl.Run{BaseURL: base.String()}
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
			return err
		}
	}

	if err := engine.Start(deps.Ctx, base.String(), c.Delay); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(stderr, "Commands: p (pause), r (resume), s (stop)")

	go readControls(deps.Stdin, engine, stdout, stderr)
	engine.Wait()

	results := engine.Results()

	// An interrupted crawl is still recorded and exported.
	g, ctx := errgroup.WithContext(context.WithoutCancel(deps.Ctx))
	if run != nil {
		g.Go(func() error {
			return deps.Runs.SaveEntries(ctx, run.ID, results)
		})
	}

	var file *fs.ResultFile
	if len(results) > 0 {
		file = c.ResultFile(base.String(), exporter)
		g.Go(func() error {
			return file.Save(results)
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", sitecrawl.ErrorMessage(err))
		return err
	}

	if file == nil {
		fmt.Fprintln(stdout, "No URLs found.")
	} else {
		fmt.Fprintf(stdout, "Saved %d pages to %s\n", len(results), file.Path())
	}
	if run != nil {
		fmt.Fprintf(stdout, "Run ID: %s\n", run.ID)
	}
	return nil
}

// readControls applies pause, resume and stop commands read line by line
// from r until the crawl finishes or r is exhausted.
func readControls(r io.Reader, engine *crawl.Engine, stdout, stderr io.Writer) {
	if r == nil {
		return
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-engine.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-engine.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "p", "pause":
				if engine.State() == sitecrawl.StateRunning {
					engine.Pause()
					fmt.Fprintln(stdout, "Paused")
				}
			case "r", "resume":
				if engine.State() == sitecrawl.StatePaused {
					engine.Resume()
					fmt.Fprintln(stdout, "Resumed")
				}
			case "s", "stop":
				engine.Stop()
				return
			case "":
			default:
				fmt.Fprintf(stderr, "unknown command %q: use p, r or s\n", line)
			}
		}
	}
}

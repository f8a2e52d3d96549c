// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poiesic/retrace"
	"github.com/poiesic/retrace/ai"
	"github.com/poiesic/retrace/ai/openai"
	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/hint"
	"github.com/poiesic/retrace/recall"
	"github.com/poiesic/retrace/search"
	"github.com/poiesic/retrace/transcript"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "retrace",
		Usage: "Keyword retrieval over conversational session transcripts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "log-dir",
				Usage:   "Root directory of session transcript logs",
				Value:   defaultLogDir(),
				EnvVars: []string{"RETRACE_LOG_DIR"},
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Directory holding the index and keyword dictionary",
				Value:   defaultDataDir(),
				EnvVars: []string{"RETRACE_DATA_DIR"},
			},
			&cli.StringFlag{
				Name:    "session",
				Usage:   "Current session id, excluded from results",
				EnvVars: []string{"RETRACE_SESSION_ID"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Build or extend the transcript index",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "full",
						Usage: "Reindex every transcript instead of only new ones",
					},
					&cli.BoolFlag{
						Name:  "skip-dictionary",
						Usage: "Skip the keyword dictionary refresh after indexing",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search indexed sessions by keyword",
				ArgsUsage: "<query terms>",
				Action:    searchCommand,
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:    "sessions",
						Aliases: []string{"n"},
						Usage:   "Maximum sessions in the report",
						Value:   search.DefaultSessionCount,
					},
					&cli.IntFlag{
						Name:    "messages",
						Aliases: []string{"m"},
						Usage:   "Snippets per session (0 suppresses snippets)",
						Value:   search.DefaultMessageCount,
					},
					&cli.IntFlag{
						Name:  "context",
						Usage: "Snippet window width in characters",
						Value: search.DefaultContextChars,
					},
					&cli.BoolFlag{
						Name:  "topics",
						Usage: "Show per-session topics instead of project paths",
					},
					&cli.BoolFlag{
						Name:  "oldest-first",
						Usage: "Break ranking ties toward older sessions",
					},
					&cli.StringFlag{
						Name:  "recall",
						Usage: "Chain a recall question over the matched sessions",
					},
				}, aiFlags()...),
			},
			{
				Name:      "recall",
				Usage:     "Ask a question against specific past sessions",
				ArgsUsage: "<session id prefix> [prefix...]",
				Action:    recallCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "question",
						Aliases:  []string{"q"},
						Usage:    "Question to answer from each session",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Wall-clock budget for the whole batch",
						Value: recall.DefaultTimeout,
					},
				}, aiFlags()...),
			},
			{
				Name:      "hint",
				Usage:     "Surface past sessions related to free-form text",
				ArgsUsage: "<natural language text>",
				Action:    hintCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "sessions",
						Aliases: []string{"n"},
						Usage:   "Maximum sessions in the hint",
						Value:   hint.DefaultSessionCount,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "ai-host",
			Usage:   "OpenAI-compatible chat service URL",
			Value:   ai.DefaultHost,
			EnvVars: []string{"RETRACE_AI_HOST"},
		},
		&cli.StringFlag{
			Name:    "ai-model",
			Usage:   "Chat model name",
			Value:   ai.DefaultModel,
			EnvVars: []string{"RETRACE_AI_MODEL"},
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Usage: "Answer length bound in tokens",
			Value: ai.DefaultMaxTokens,
		},
	}
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	source, err := transcript.NewSource(c.String("log-dir"))
	if err != nil {
		return fmt.Errorf("failed to open transcript source: %w", err)
	}

	sys, err := retrace.Open(c.String("data-dir"))
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	defer sys.Close()

	builder, err := sys.NewBuilder(source)
	if err != nil {
		return fmt.Errorf("failed to create builder: %w", err)
	}

	var appended int
	if c.Bool("full") {
		appended, err = builder.FullBuild(ctx)
	} else {
		appended, err = builder.IncrementalUpdate(ctx)
	}
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Indexed %d rows\n", appended)

	if c.Bool("skip-dictionary") {
		return nil
	}

	// The process exits after this command, so the refresh that would
	// normally run detached runs inline here.
	stale, err := sys.StalenessFlag().IsStale(ctx)
	if err != nil || !stale {
		return err
	}
	refresher, err := sys.NewRefresher()
	if err != nil {
		return fmt.Errorf("failed to create refresher: %w", err)
	}
	defer refresher.Release()

	n, err := refresher.RunNow(ctx)
	if err != nil {
		// Dictionary refresh is advisory. The index build already
		// succeeded, so report and move on.
		slog.Warn("keyword dictionary refresh failed", "err", err)
		return nil
	}
	fmt.Fprintf(os.Stderr, "Keyword dictionary refreshed (%d terms)\n", n)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	sys, err := retrace.Open(c.String("data-dir"))
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	defer sys.Close()

	var opts []search.Option
	if session := c.String("session"); session != "" {
		opts = append(opts, search.WithExcludedSession(core.SessionID(session)))
	}
	if c.Bool("oldest-first") {
		opts = append(opts, search.WithTieBreak(search.OldestFirst))
	}

	searcher, err := sys.NewSearcher(opts...)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	messageCount := c.Int("messages")
	if messageCount == 0 {
		messageCount = -1
	}
	report, err := searcher.Search(ctx, query, search.Params{
		SessionCount: c.Int("sessions"),
		MessageCount: messageCount,
		ContextChars: c.Int("context"),
		Topics:       c.Bool("topics"),
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Print(report.Render())

	// Full ids go to stderr so a follow-up recall can be pasted or piped
	// without parsing the report.
	for _, id := range report.SessionIDs() {
		fmt.Fprintln(os.Stderr, id)
	}

	question := c.String("recall")
	if question == "" || len(report.Sessions) == 0 {
		return nil
	}

	prefixes := make([]string, 0, len(report.Sessions))
	for _, id := range report.SessionIDs() {
		prefixes = append(prefixes, string(id))
	}
	return runRecall(ctx, c, prefixes, question, recall.DefaultTimeout)
}

func recallCommand(c *cli.Context) error {
	prefixes := c.Args().Slice()
	if len(prefixes) == 0 {
		return fmt.Errorf("at least one session id prefix is required")
	}
	return runRecall(context.Background(), c, prefixes, c.String("question"), c.Duration("timeout"))
}

func runRecall(ctx context.Context, c *cli.Context, prefixes []string, question string, timeout time.Duration) error {
	source, err := transcript.NewSource(c.String("log-dir"))
	if err != nil {
		return fmt.Errorf("failed to open transcript source: %w", err)
	}

	sys, err := retrace.Open(c.String("data-dir"))
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	defer sys.Close()

	answerer, err := openai.NewAnswerer(ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithModel(c.String("ai-model")),
		ai.WithMaxTokens(c.Int("max-tokens")),
	))
	if err != nil {
		return fmt.Errorf("failed to create answerer: %w", err)
	}

	orchestrator, err := sys.NewOrchestrator(source, answerer,
		recall.WithTimeout(timeout))
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	result, err := orchestrator.Recall(ctx, prefixes, question)
	if err != nil {
		return fmt.Errorf("recall failed: %w", err)
	}

	fmt.Print(result.Render())
	return nil
}

func hintCommand(c *cli.Context) error {
	ctx := context.Background()

	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("input text is required")
	}

	sys, err := retrace.Open(c.String("data-dir"))
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	defer sys.Close()

	var searchOpts []search.Option
	if session := c.String("session"); session != "" {
		searchOpts = append(searchOpts, search.WithExcludedSession(core.SessionID(session)))
	}

	hinter, err := sys.NewHinter(searchOpts, hint.WithSessionCount(c.Int("sessions")))
	if err != nil {
		return fmt.Errorf("failed to create hinter: %w", err)
	}

	result, err := hinter.Hint(ctx, text)
	if err != nil {
		return fmt.Errorf("hint failed: %w", err)
	}

	fmt.Print(result.Render())
	return nil
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".claude", "projects")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".retrace")
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

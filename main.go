package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/threadlet/threadlet/internal/api"
	"github.com/threadlet/threadlet/internal/cache"
	"github.com/threadlet/threadlet/internal/config"
	"github.com/threadlet/threadlet/internal/thread"
	"github.com/threadlet/threadlet/internal/ui"
	"github.com/threadlet/threadlet/internal/ui/threadview"
)

// Version can be set at build time with -ldflags="-X main.Version=X.Y.Z"
var Version = "dev"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Default()

	var (
		sortFlag  string
		jsonFile  string
		baseURL   string
		logLevel  string
		log       zerolog.Logger
		logCloser = func() {}
	)

	app := &cli.Command{
		Name:      "threadlet",
		Usage:     "Terminal viewer for discussion threads",
		UsageText: "threadlet [options] <post-id>",
		Version:   Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "sort mode (best, new, top, controversial)",
				Value:       string(thread.SortBest),
				Destination: &sortFlag,
			},
			&cli.StringFlag{
				Name:        "json",
				Usage:       "read comment records from a JSON file instead of the API",
				Destination: &jsonFile,
			},
			&cli.StringFlag{
				Name:        "base-url",
				Usage:       "API base URL",
				Sources:     cli.EnvVars("THREADLET_BASE_URL"),
				Value:       cfg.BaseURL,
				Destination: &baseURL,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("THREADLET_LOG_LEVEL"),
				Value:       "info",
				Destination: &logLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
				return ctx, fmt.Errorf("creating cache dir: %w", err)
			}
			var err error
			log, logCloser, err = newLogger(logLevel, cfg.LogPath)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			defer logCloser()

			mode := thread.SortMode(sortFlag)
			if _, err := thread.SortTree(nil, mode); err != nil {
				return err
			}

			var tv threadview.Model
			if jsonFile != "" {
				post, records, err := loadFromFile(jsonFile)
				if err != nil {
					return err
				}
				tv = threadview.NewFromRecords(post, records, mode)
			} else {
				postID := c.Args().First()
				if postID == "" {
					return fmt.Errorf("missing post ID (or use --json)")
				}
				cfg.BaseURL = baseURL
				db, err := cache.Open(cfg.DBPath)
				if err != nil {
					return fmt.Errorf("opening cache: %w", err)
				}
				defer db.Close()
				client := api.NewClient(cfg.BaseURL, log)
				tv = threadview.New(postID, cfg, client, db, mode)
			}

			p := tea.NewProgram(ui.NewApp(tv), tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			return nil
		},
	}

	return app.Run(context.Background(), args)
}

// loadFromFile reads a flat comment list from disk, for offline viewing.
func loadFromFile(path string) (*api.Post, []thread.CommentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var records []thread.CommentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	post := &api.Post{
		Title:        filepath.Base(path),
		CommentCount: len(records),
	}
	return post, records, nil
}

// newLogger writes JSON logs to a file so they never disturb the TUI.
func newLogger(level, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	f, err := os.Create(file)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}
	closer = func() { _ = f.Close() }

	l := zerolog.New(f).With().Timestamp().Logger().Level(lvl)
	return l, closer, nil
}

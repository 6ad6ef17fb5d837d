package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/jask/randogroup/internal/config"
	"github.com/jask/randogroup/internal/grouping"
	"github.com/jask/randogroup/internal/logging"
	"github.com/jask/randogroup/internal/report"
	"github.com/jask/randogroup/internal/roster"
	"github.com/jask/randogroup/internal/store"
	"github.com/jask/randogroup/internal/tui"
)

func main() {
	ctx := context.Background()

	// .env is optional
	_ = godotenv.Load()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("error: %v", err)
	}
}

type batchArgs struct {
	groups    int
	draw      int
	listName  string
	file      string
	showLists bool
}

func newFlagSet(out io.Writer) (*pflag.FlagSet, *batchArgs) {
	var b batchArgs
	fs := pflag.NewFlagSet("randogroup", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVarP(&b.groups, "groups", "g", 0, "split the roster into N groups and exit")
	fs.IntVarP(&b.draw, "draw", "d", 0, "draw K names from the roster and exit")
	fs.StringVarP(&b.listName, "list", "l", "", "use the saved list NAME as the roster")
	fs.StringVarP(&b.file, "file", "f", "", "read the roster from PATH, one name per line (- for stdin)")
	fs.BoolVar(&b.showLists, "lists", false, "print the saved lists and exit")

	fs.String("store", "", "list store backend: json, sqlite or badger")
	fs.String("data-dir", "", "directory holding saved lists and the log file")
	fs.Int64("seed", 0, "random seed (0 picks a fresh one)")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("log-file", "", "log file path")
	return fs, &b
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs, batch := newFlagSet(stdout)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	dataDir := cfg.Store.Dir
	if dataDir == "" {
		if dataDir, err = store.DataDir(store.AppID); err != nil {
			return fmt.Errorf("data dir: %w", err)
		}
	}
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = filepath.Join(dataDir, logging.FileName)
	}
	logger, logFile, err := logging.New(logging.Options{Level: cfg.Log.Level, Path: logPath})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logFile.Close()
	logger.Debug("starting", "backend", cfg.Store.Backend, "data_dir", dataDir)

	st, err := store.Open(ctx, store.Options{Backend: cfg.Store.Backend, Dir: dataDir, Logger: logger})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	lists, err := st.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load lists: %w", err)
	}

	src := grouping.NewSource(cfg.Random.Seed)

	if fs.Changed("groups") || fs.Changed("draw") || batch.showLists {
		return runBatch(batch, fs, lists, src, stdin, stdout)
	}

	p := tea.NewProgram(tui.New(ctx, tui.Deps{
		Store:  st,
		Lists:  lists,
		Source: src,
		Logger: logger,
		Groups: cfg.UI.Groups,
		Draw:   cfg.UI.Draw,
	}), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func runBatch(b *batchArgs, fs *pflag.FlagSet, lists *store.Lists, src grouping.Source, stdin io.Reader, stdout io.Writer) error {
	if b.showLists {
		report.Lists(stdout, lists)
		return nil
	}
	if fs.Changed("groups") && fs.Changed("draw") {
		return errors.New("use only one of --groups and --draw")
	}

	entries, err := batchRoster(b, lists, stdin)
	if err != nil {
		return err
	}

	if fs.Changed("groups") {
		groups, err := grouping.Partition(src, entries, b.groups)
		if err != nil {
			return err
		}
		report.Groups(stdout, groups)
		return nil
	}
	drawn, err := grouping.Sample(src, entries, b.draw)
	if err != nil {
		return err
	}
	report.Draw(stdout, drawn)
	return nil
}

func batchRoster(b *batchArgs, lists *store.Lists, stdin io.Reader) ([]string, error) {
	switch {
	case b.listName != "" && b.file != "":
		return nil, errors.New("use only one of --list and --file")
	case b.listName != "":
		return lists.Lookup(b.listName)
	case b.file == "-":
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return roster.Parse(string(raw)), nil
	case b.file != "":
		raw, err := os.ReadFile(b.file)
		if err != nil {
			return nil, fmt.Errorf("read roster: %w", err)
		}
		return roster.Parse(string(raw)), nil
	default:
		return nil, errors.New("--groups and --draw need a roster from --list or --file")
	}
}

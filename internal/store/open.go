package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Options selects and locates a backend.
type Options struct {
	Backend string
	// Dir holds the backend's file or directory; empty means DataDir(AppID).
	Dir    string
	Logger *slog.Logger
}

// Open returns the backend named by opts.Backend rooted at opts.Dir.
func Open(ctx context.Context, opts Options) (Store, error) {
	dir := opts.Dir
	if dir == "" {
		d, err := DataDir(AppID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		dir = d
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	switch opts.Backend {
	case BackendJSON, "":
		return NewJSONFile(filepath.Join(dir, JSONFileName), log), nil
	case BackendSQLite:
		s, err := OpenSQLite(ctx, filepath.Join(dir, SQLiteFileName), log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendBadger:
		s, err := OpenBadger(filepath.Join(dir, BadgerDirName), log)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// JSONFileName is the default file of the json backend.
const JSONFileName = "student_lists.json"

// JSONFile keeps all lists in one indented JSON object on disk.
type JSONFile struct {
	path string
	log  *slog.Logger
}

func NewJSONFile(path string, log *slog.Logger) *JSONFile {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &JSONFile{path: path, log: log}
}

func (s *JSONFile) Path() string { return s.path }

// LoadAll reads the file, writing an empty object first if it does not exist.
func (s *JSONFile) LoadAll(ctx context.Context) (*Lists, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		lists := NewLists()
		if err := s.SaveAll(ctx, lists); err != nil {
			return nil, err
		}
		s.log.Info("created empty list store", "path", s.path)
		return lists, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, s.path, err)
	}
	lists := NewLists()
	if err := json.Unmarshal(data, lists); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrIO, s.path, err)
	}
	s.log.Debug("loaded lists", "path", s.path, "count", lists.Len())
	return lists, nil
}

// SaveAll replaces the file through a temp file and rename.
func (s *JSONFile) SaveAll(_ context.Context, lists *Lists) error {
	data, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode lists: %w", ErrIO, err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir: %w", ErrIO, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %w", ErrIO, s.path, err)
	}
	s.log.Debug("saved lists", "path", s.path, "count", lists.Len())
	return nil
}

func (s *JSONFile) Close() error { return nil }

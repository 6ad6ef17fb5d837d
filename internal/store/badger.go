package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// BadgerDirName is the default directory of the badger backend.
const BadgerDirName = "badger"

const (
	badgerPrefix    = "lists:"
	badgerOrderKey  = badgerPrefix + "order"
	badgerEntryPref = badgerPrefix + "entries:"
)

// Badger keeps the name order under one key and each list under its own key.
type Badger struct {
	db  *badger.DB
	log *slog.Logger
}

func OpenBadger(dir string, log *slog.Logger) (*Badger, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	opts := badger.DefaultOptions(dir).
		WithLogger(badgerLogger{log: log}).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: open badger %s: %w", ErrIO, dir, err)
	}
	return &Badger{db: db, log: log}, nil
}

func (s *Badger) LoadAll(_ context.Context) (*Lists, error) {
	lists := NewLists()
	created := false
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerOrderKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			created = true
			return txn.Set([]byte(badgerOrderKey), []byte("[]"))
		}
		if err != nil {
			return err
		}
		var names []string
		if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &names) }); err != nil {
			return fmt.Errorf("decode order: %w", err)
		}
		for _, name := range names {
			it, err := txn.Get([]byte(badgerEntryPref + name))
			if err != nil {
				return fmt.Errorf("list %q: %w", name, err)
			}
			var entries []string
			if err := it.Value(func(val []byte) error { return json.Unmarshal(val, &entries) }); err != nil {
				return fmt.Errorf("decode list %q: %w", name, err)
			}
			lists.Set(name, entries)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: load lists: %w", ErrIO, err)
	}
	if created {
		s.log.Info("created empty list store", "backend", "badger")
	}
	return lists, nil
}

// SaveAll drops every stored list key and writes the collection in one
// transaction.
func (s *Badger) SaveAll(_ context.Context, lists *Lists) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		var stale [][]byte
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(badgerPrefix)
		it := txn.NewIterator(opts)
		for it.Rewind(); it.Valid(); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()
		for _, k := range stale {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}

		order, err := json.Marshal(lists.Names())
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(badgerOrderKey), order); err != nil {
			return err
		}
		for _, name := range lists.Names() {
			entries, _ := lists.Get(name)
			val, err := json.Marshal(entries)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(badgerEntryPref+name), val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: save lists: %w", ErrIO, err)
	}
	s.log.Debug("saved lists", "backend", "badger", "count", lists.Len())
	return nil
}

func (s *Badger) Close() error {
	return s.db.Close()
}

// badgerLogger routes badger's own logging into slog instead of stderr,
// which belongs to the terminal UI.
type badgerLogger struct {
	log *slog.Logger
}

func (l badgerLogger) Errorf(f string, v ...any) { l.log.Error(fmt.Sprintf(f, v...), "component", "badger") }
func (l badgerLogger) Warningf(f string, v ...any) { l.log.Warn(fmt.Sprintf(f, v...), "component", "badger") }
func (l badgerLogger) Infof(f string, v ...any) { l.log.Info(fmt.Sprintf(f, v...), "component", "badger") }
func (l badgerLogger) Debugf(f string, v ...any) { l.log.Debug(fmt.Sprintf(f, v...), "component", "badger") }

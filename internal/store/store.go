//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
package store

import "context"

// Store persists the whole named-list collection at once. LoadAll creates an
// empty collection on first use; SaveAll replaces everything that was stored.
type Store interface {
	LoadAll(ctx context.Context) (*Lists, error)
	SaveAll(ctx context.Context, lists *Lists) error
	Close() error
}

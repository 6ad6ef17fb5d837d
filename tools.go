//go:build tools

// Package randogroup tracks the tool dependencies used by go generate and lint
// runs so they are pinned in go.mod.
package randogroup

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "go.uber.org/mock/mockgen"
)

// Package creaturefile provides access to creature export files on disk
package creaturefile

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturefilemock github.com/KirkDiggler/rpg-statblock/internal/repositories/creature_file Repository

// Repository loads raw creature documents
type Repository interface {
	// Get reads the document at input.Path. Relative paths resolve against
	// the repository's base directory.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// GetInput contains parameters for reading a creature document
type GetInput struct {
	Path string
}

// GetOutput contains the raw document and where it was read from
type GetOutput struct {
	// Path is the resolved path that was read
	Path string
	Data []byte
}

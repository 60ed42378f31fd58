package creaturefile

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

const (
	errPathEmpty  = "path cannot be empty"
	errReadFailed = "failed to read creature file"
	errNotUTF8    = "creature file is not valid UTF-8"
	errWorkingDir = "failed to determine working directory"
)

// Config holds the configuration for the file repository
type Config struct {
	// BaseDir resolves relative paths. Defaults to the working directory.
	BaseDir string
}

type fileRepository struct {
	baseDir string
}

// NewFileRepository creates a repository reading from the local filesystem
func NewFileRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeIO, errWorkingDir)
		}
		baseDir = wd
	}

	return &fileRepository{baseDir: baseDir}, nil
}

// Ensure fileRepository implements Repository
var _ Repository = (*fileRepository)(nil)

// Get reads the whole file; the handle is closed before returning. Content
// that is not valid UTF-8 is rejected as unreadable.
func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "read canceled")
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	path := input.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, errReadFailed).
			WithMeta("path", path)
	}
	if !utf8.Valid(data) {
		return nil, errors.IO(errNotUTF8).WithMeta("path", path)
	}

	return &GetOutput{
		Path: path,
		Data: data,
	}, nil
}

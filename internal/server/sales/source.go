package sales

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/salesinsight/internal/common"
)

// Source opens the CSV contents. Callers close the returned reader.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name identifies the source in error messages, e.g. a file path.
	Name() string
}

// FileSource reads a CSV file from the local filesystem.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string { return s.Path }

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrDataUnavailable, s.Path)
		}
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	return f, nil
}

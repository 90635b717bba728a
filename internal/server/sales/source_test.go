package sales

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Open(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(p, []byte(sampleCSV), 0o600))

	src := NewFileSource(p)
	assert.Equal(t, p, src.Name())

	rc, err := src.Open(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(b))
}

func TestFileSource_Missing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope.csv")

	_, err := NewFileSource(p).Open(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDataUnavailable)
	assert.Contains(t, err.Error(), p)
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("whatever.csv").Open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

package auth

import (
	"testing"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBearer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearer(tt.header)
		if tt.wantErr {
			require.Error(t, err, "header %q", tt.header)
			assert.ErrorIs(t, err, common.ErrUnauthenticated)
			assert.ErrorIs(t, err, common.ErrMissingToken)
			continue
		}
		require.NoError(t, err, "header %q", tt.header)
		assert.Equal(t, tt.want, got)
	}
}

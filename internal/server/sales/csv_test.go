package sales

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dmitrijs2005/salesinsight/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Tanggal,Produk,Jumlah,Harga
2024-01-01,Kopi,3,15000
2024-01-02,Teh,,7500.5
2024-01-03,"Roti, Keju",2,
`

func TestParseCSV(t *testing.T) {
	got, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	cols := []string{"Tanggal", "Produk", "Jumlah", "Harga"}
	want := []models.SalesRecord{
		{Columns: cols, Values: []any{"2024-01-01", "Kopi", int64(3), 15000.0}},
		{Columns: cols, Values: []any{"2024-01-02", "Teh", nil, 7500.5}},
		{Columns: cols, Values: []any{"2024-01-03", "Roti, Keju", int64(2), nil}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCSV_JSONKeepsOrderAndValues(t *testing.T) {
	got, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Tanggal":"2024-01-01","Produk":"Kopi","Jumlah":3,"Harga":15000},
		{"Tanggal":"2024-01-02","Produk":"Teh","Jumlah":null,"Harga":7500.5},
		{"Tanggal":"2024-01-03","Produk":"Roti, Keju","Jumlah":2,"Harga":null}
	]`, string(b))
	assert.True(t, strings.HasPrefix(string(b), `[{"Tanggal":`), "header order must be preserved: %s", b)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestParseCSV_Errors(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyHeader)

	_, err = ParseCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err, "ragged rows are rejected")
}

func TestParseCSV_StripsBOM(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("\ufeffProduk,Jumlah\nKopi,1\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)

	v, ok := got[0].Get("Produk")
	require.True(t, ok)
	assert.Equal(t, "Kopi", v)
}

func TestParseCSV_TypesPerColumn(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mixed codes stay strings",
			in:   "Kode,Produk\n007,Kopi\nA12,Teh\n1e3,Susu\n",
			want: `[{"Kode":"007","Produk":"Kopi"},{"Kode":"A12","Produk":"Teh"},{"Kode":"1e3","Produk":"Susu"}]`,
		},
		{
			name: "leading zeros stay strings",
			in:   "Kode,Jumlah\n007,1\n010,2\n",
			want: `[{"Kode":"007","Jumlah":1},{"Kode":"010","Jumlah":2}]`,
		},
		{
			name: "ints widen to floats",
			in:   "Harga\n15000\n7500.5\n\n",
			want: `[{"Harga":15000},{"Harga":7500.5}]`,
		},
		{
			name: "zero and negatives are numbers",
			in:   "Selisih\n0\n-3\n0.5\n",
			want: `[{"Selisih":0},{"Selisih":-3},{"Selisih":0.5}]`,
		},
		{
			name: "NaN text is a string",
			in:   "Nilai\n1\nNaN\n",
			want: `[{"Nilai":"1"},{"Nilai":"NaN"}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.in))
			require.NoError(t, err)

			b, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestParseCSV_IntColumnKeepsInt64(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("Jumlah,Harga\n3,1.5\n,2\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []any{int64(3), 1.5}, got[0].Values)
	assert.Equal(t, []any{nil, 2.0}, got[1].Values)
}

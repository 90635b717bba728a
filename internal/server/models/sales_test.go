package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesRecord_MarshalJSON_KeepsColumnOrder(t *testing.T) {
	r := SalesRecord{
		Columns: []string{"Tanggal", "Produk", "Jumlah", "Harga", "Catatan"},
		Values:  []any{"2024-01-02", "Kopi", int64(3), 15000.5, nil},
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"Tanggal":"2024-01-02","Produk":"Kopi","Jumlah":3,"Harga":15000.5,"Catatan":null}`, string(b))
}

func TestSalesRecord_MarshalJSON_Errors(t *testing.T) {
	_, err := json.Marshal(SalesRecord{Columns: []string{"a", "b"}, Values: []any{1}})
	require.Error(t, err)

	_, err = json.Marshal(SalesRecord{Columns: []string{"a"}, Values: []any{math.Inf(1)}})
	require.Error(t, err)
}

func TestSalesRecord_Get(t *testing.T) {
	r := SalesRecord{Columns: []string{"Produk", "Jumlah"}, Values: []any{"Teh", int64(7)}}

	v, ok := r.Get("Jumlah")
	require.True(t, ok)
	assert.Equal(t, int64(7), v)

	_, ok = r.Get("Harga")
	assert.False(t, ok)
}

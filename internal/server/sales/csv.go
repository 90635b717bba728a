package sales

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/salesinsight/internal/server/models"
)

var ErrEmptyHeader = errors.New("csv has no header row")

// ParseCSV reads a header row followed by data rows. Every data row must have
// as many fields as the header. Each column gets one type, see columnKinds.
func ParseCSV(r io.Reader) ([]models.SalesRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyHeader
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}
	columns := append([]string(nil), header...)

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, row)
	}

	kinds := columnKinds(len(columns), rows)
	records := make([]models.SalesRecord, 0, len(rows))
	for _, row := range rows {
		values := make([]any, len(row))
		for i, cell := range row {
			values[i] = convert(cell, kinds[i])
		}
		records = append(records, models.SalesRecord{Columns: columns, Values: values})
	}

	return records, nil
}

type columnKind int

const (
	kindInt columnKind = iota
	kindFloat
	kindString
)

// columnKinds picks int when every non-empty cell of a column is an integer,
// float when every one is a finite number, string otherwise. Numbers written
// with a leading zero ("007") force the column to string.
func columnKinds(n int, rows [][]string) []columnKind {
	kinds := make([]columnKind, n)
	for _, row := range rows {
		for i, cell := range row {
			if cell == "" || kinds[i] == kindString {
				continue
			}
			kinds[i] = max(kinds[i], cellKind(cell))
		}
	}
	return kinds
}

func cellKind(s string) columnKind {
	if hasLeadingZero(s) {
		return kindString
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return kindInt
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return kindFloat
	}
	return kindString
}

func hasLeadingZero(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9'
}

// convert types a cell for its column. Empty cells are nil in every column.
func convert(s string, kind columnKind) any {
	if s == "" {
		return nil
	}
	switch kind {
	case kindInt:
		i, _ := strconv.ParseInt(s, 10, 64)
		return i
	case kindFloat:
		f, _ := strconv.ParseFloat(s, 64)
		return f
	default:
		return s
	}
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

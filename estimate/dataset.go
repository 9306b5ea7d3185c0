package estimate

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Dataset is an immutable table of raw observations: one row per observation,
// one named column per variable. It is the input to nonparametric resampling.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]float64
}

// NewDataset creates a validated Dataset. It requires at least one row and
// one column, unique column names, and a uniform row width equal to
// len(columns). The input slices are deep-copied.
func NewDataset(columns []string, rows [][]float64) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: columns must not be empty", ErrInvalidDataset)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: rows must not be empty", ErrInvalidDataset)
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has an empty name", ErrInvalidDataset, i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrInvalidDataset, name)
		}
		index[name] = i
	}

	d := &Dataset{
		columns: make([]string, len(columns)),
		index:   index,
		rows:    make([][]float64, len(rows)),
	}
	copy(d.columns, columns)
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidDataset, i, len(row), len(columns))
		}
		d.rows[i] = make([]float64, len(row))
		copy(d.rows[i], row)
	}

	return d, nil
}

// NumRows returns the number of observations.
func (d *Dataset) NumRows() int { return len(d.rows) }

// NumCols returns the number of variables.
func (d *Dataset) NumCols() int { return len(d.columns) }

// Columns returns a copy of the column names in declaration order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// Row returns a copy of observation i.
func (d *Dataset) Row(i int) []float64 {
	out := make([]float64, len(d.rows[i]))
	copy(out, d.rows[i])
	return out
}

// Rows returns a deep copy of all observations.
func (d *Dataset) Rows() [][]float64 {
	out := make([][]float64, len(d.rows))
	for i, row := range d.rows {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// Column returns a copy of the named column.
func (d *Dataset) Column(name string) ([]float64, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(d.rows))
	for r, row := range d.rows {
		out[r] = row[i]
	}
	return out, true
}

// Resample draws a bootstrap resample: NumRows independent row draws with
// replacement using rng. The receiver is not modified; the resample shares
// row storage with the receiver, which both treat as read-only.
func (d *Dataset) Resample(rng *rand.Rand) *Dataset {
	rows := make([][]float64, len(d.rows))
	for i := range rows {
		rows[i] = d.rows[rng.Intn(len(d.rows))]
	}
	return &Dataset{columns: d.columns, index: d.index, rows: rows}
}

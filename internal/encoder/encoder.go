package encoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
)

// ErrInvalidInput is returned when a record holds a categorical value the encoder
// was not fitted on. No partial encoding is ever produced alongside it.
var ErrInvalidInput = errors.New("invalid input")

// artifact is the on-disk form of a fitted one-hot encoder.
type artifact struct {
	Columns    []string   `json:"columns"`
	Categories [][]string `json:"categories"`
}

// Encoder validates categorical attributes against fitted categories and expands
// them into indicator columns. It is immutable after construction.
type Encoder struct {
	columns    []string
	categories [][]string
	index      []map[string]int
}

// FeatureMatrix is the model input: one row per record, columns in Columns order.
type FeatureMatrix struct {
	Columns []string
	Rows    [][]float64
}

// Load reads a fitted encoder artifact from a JSON file.
func Load(path string) (*Encoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read encoder file %s: %w", path, err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode encoder file %s: %w", path, err)
	}
	if len(a.Columns) == 0 {
		a.Columns = models.CategoricalColumns
	}
	return New(a.Columns, a.Categories)
}

// New builds an encoder from per-column category lists. columns must be
// models.CategoricalColumns, in order.
func New(columns []string, categories [][]string) (*Encoder, error) {
	if len(columns) != len(models.CategoricalColumns) {
		return nil, fmt.Errorf("encoder expects %d categorical columns, got %d", len(models.CategoricalColumns), len(columns))
	}
	for i, col := range columns {
		if col != models.CategoricalColumns[i] {
			return nil, fmt.Errorf("encoder column %d is %q, expected %q", i, col, models.CategoricalColumns[i])
		}
	}
	if len(categories) != len(columns) {
		return nil, fmt.Errorf("encoder has %d category lists for %d columns", len(categories), len(columns))
	}

	e := &Encoder{
		columns:    append([]string(nil), columns...),
		categories: make([][]string, len(categories)),
		index:      make([]map[string]int, len(categories)),
	}
	for i, cats := range categories {
		if len(cats) == 0 {
			return nil, fmt.Errorf("encoder column %q has no categories", columns[i])
		}
		e.categories[i] = append([]string(nil), cats...)
		e.index[i] = make(map[string]int, len(cats))
		for j, c := range cats {
			if _, dup := e.index[i][c]; dup {
				return nil, fmt.Errorf("encoder column %q lists category %q twice", columns[i], c)
			}
			e.index[i][c] = j
		}
	}
	return e, nil
}

// Categories returns the fitted categories of a column in fitted order, or nil
// for an unknown column.
func (e *Encoder) Categories(column string) []string {
	for i, col := range e.columns {
		if col == column {
			return append([]string(nil), e.categories[i]...)
		}
	}
	return nil
}

// Contains reports whether value is a fitted category of column.
func (e *Encoder) Contains(column, value string) bool {
	for i, col := range e.columns {
		if col == column {
			_, ok := e.index[i][value]
			return ok
		}
	}
	return false
}

// Width is the number of columns Preprocess produces.
func (e *Encoder) Width() int {
	n := len(models.NumericColumns)
	for _, cats := range e.categories {
		n += len(cats)
	}
	return n
}

// FeatureNames names the output columns: numeric columns first, then one
// "<column>_<category>" indicator per fitted category.
func (e *Encoder) FeatureNames() []string {
	names := make([]string, 0, e.Width())
	names = append(names, models.NumericColumns...)
	for i, col := range e.columns {
		for _, c := range e.categories[i] {
			names = append(names, col+"_"+c)
		}
	}
	return names
}

// Sanitize replaces every categorical value that is not a fitted category with a
// nil missing marker. Rows and columns follow the input and CategoricalColumns order.
func (e *Encoder) Sanitize(records []models.PropertyRecord) [][]*string {
	out := make([][]*string, len(records))
	for r, rec := range records {
		values := rec.Categorical()
		row := make([]*string, len(values))
		for i, v := range values {
			if _, ok := e.index[i][v]; ok {
				v := v
				row[i] = &v
			}
		}
		out[r] = row
	}
	return out
}

// Preprocess validates every record and, only if all of them are valid, returns
// the numeric columns followed by the indicator columns.
func (e *Encoder) Preprocess(records []models.PropertyRecord) (*FeatureMatrix, error) {
	sanitized := e.Sanitize(records)

	var invalid []string
	seen := make(map[string]bool)
	for _, row := range sanitized {
		for i, v := range row {
			if v == nil && !seen[e.columns[i]] {
				seen[e.columns[i]] = true
				invalid = append(invalid, e.columns[i])
			}
		}
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: unknown values in columns %s", ErrInvalidInput, strings.Join(invalid, ", "))
	}

	width := e.Width()
	matrix := &FeatureMatrix{
		Columns: e.FeatureNames(),
		Rows:    make([][]float64, len(records)),
	}
	for r, rec := range records {
		row := make([]float64, 0, width)
		row = append(row, rec.Numeric()...)
		for i, v := range sanitized[r] {
			indicators := make([]float64, len(e.categories[i]))
			indicators[e.index[i][*v]] = 1
			row = append(row, indicators...)
		}
		matrix.Rows[r] = row
	}
	return matrix, nil
}

// Encode is Preprocess for a single record.
func (e *Encoder) Encode(record models.PropertyRecord) ([]float64, error) {
	matrix, err := e.Preprocess([]models.PropertyRecord{record})
	if err != nil {
		return nil, err
	}
	return matrix.Rows[0], nil
}

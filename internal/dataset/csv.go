package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/tensor"
)

// LoadCSV reads rows of the form x1,...,xd,label.
//
// A first row in which no field parses as a number is a header. Every row,
// the header included, must have the same number of columns and every label
// must be 0 or 1.
func LoadCSV(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("csv: %w", err)
	}
	var header []string
	if len(records) > 0 && isHeader(records[0]) {
		header, records = records[0], records[1:]
	}
	if len(records) == 0 {
		return Dataset{}, fmt.Errorf("csv: no rows: %w", tensor.ErrEmpty)
	}

	cols := len(records[0])
	if cols < 2 {
		return Dataset{}, fmt.Errorf("csv: need at least one feature and a label, got %d columns: %w",
			cols, ErrInvalidArgument)
	}
	if header != nil && len(header) != cols {
		return Dataset{}, fmt.Errorf("csv: header has %d columns, rows have %d: %w",
			len(header), cols, ErrInvalidArgument)
	}

	x := mat.NewDense(len(records), cols-1, nil)
	labels := mat.NewVecDense(len(records), nil)
	for i, rec := range records {
		if len(rec) != cols {
			return Dataset{}, fmt.Errorf("csv: row %d: %d columns, want %d: %w",
				i+1, len(rec), cols, ErrInvalidArgument)
		}
		row, err := parseRow(rec)
		if err != nil {
			return Dataset{}, fmt.Errorf("csv: row %d: %w", i+1, err)
		}
		x.SetRow(i, row[:cols-1])
		labels.SetVec(i, row[cols-1])
	}
	if err := nn.CheckLabels("csv", labels, len(records)); err != nil {
		return Dataset{}, err
	}
	return Dataset{X: x, Labels: labels}, nil
}

// isHeader reports whether no field of rec is a number.
func isHeader(rec []string) bool {
	for _, field := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}
	return true
}

// ReadCSVFile opens path and calls LoadCSV.
func ReadCSVFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	return LoadCSV(f)
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Join(ErrInvalidArgument, err)
		}
		row[j] = v
	}
	return row, nil
}

// WriteCSV writes x with one extra column per extra vector, under header.
func WriteCSV(w io.Writer, header []string, x mat.Matrix, extra ...mat.Vector) error {
	r, c := x.Dims()
	if len(header) != c+len(extra) {
		return fmt.Errorf("csv: %d header fields for %d columns: %w", len(header), c+len(extra), ErrInvalidArgument)
	}
	for k, v := range extra {
		if err := tensor.Check("csv", fmt.Sprintf("column %d", c+k), v, tensor.Shape{r}); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, c+len(extra))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec[j] = strconv.FormatFloat(x.At(i, j), 'g', -1, 64)
		}
		for k, v := range extra {
			rec[c+k] = strconv.FormatFloat(v.AtVec(i), 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

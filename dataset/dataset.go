package dataset

import (
	explorerErrors "bikeshare/domain/errors"
	"bikeshare/utils"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"math"
)

// Dataset is the working table of a city: the trips read from the city file plus the derived columns.
// A Dataset is never modified once built; filtering returns a new one.
// + city: key of the city the trips belong to
// + frame: trips table
// + rowIDs: position of each row in the source file, used when showing raw data
type Dataset struct {
	city   string
	frame  dataframe.DataFrame
	rowIDs []int
}

func newDataset(city string, frame dataframe.DataFrame, rowIDs []int) *Dataset {
	return &Dataset{
		city:   city,
		frame:  frame,
		rowIDs: rowIDs,
	}
}

func (d *Dataset) GetCity() string {
	return d.city
}

// Len returns the amount of trips
func (d *Dataset) Len() int {
	return d.frame.Nrow()
}

func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Columns returns the column names in file order, derived columns last
func (d *Dataset) Columns() []string {
	return d.frame.Names()
}

func (d *Dataset) HasColumn(column string) bool {
	return utils.ContainsString(column, d.frame.Names())
}

// HasColumns returns true if every column is present
func (d *Dataset) HasColumns(columns ...string) bool {
	for _, column := range columns {
		if !d.HasColumn(column) {
			return false
		}
	}
	return true
}

// Strings returns the non-missing values of column as text
func (d *Dataset) Strings(column string) ([]string, error) {
	values, err := d.column(column)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, values.Len())
	for idx := 0; idx < values.Len(); idx++ {
		element := values.Elem(idx)
		if element.IsNA() {
			continue
		}
		result = append(result, element.String())
	}
	return result, nil
}

// Ints returns the non-missing values of column that are integers
func (d *Dataset) Ints(column string) ([]int, error) {
	values, err := d.column(column)
	if err != nil {
		return nil, err
	}

	result := make([]int, 0, values.Len())
	for idx := 0; idx < values.Len(); idx++ {
		element := values.Elem(idx)
		if element.IsNA() {
			continue
		}
		value, err := element.Int()
		if err != nil {
			continue
		}
		result = append(result, value)
	}
	return result, nil
}

// Floats returns one value per row of column. Missing or non numeric cells are NaN.
func (d *Dataset) Floats(column string) ([]float64, error) {
	values, err := d.column(column)
	if err != nil {
		return nil, err
	}

	result := make([]float64, values.Len())
	for idx := 0; idx < values.Len(); idx++ {
		element := values.Elem(idx)
		if element.IsNA() {
			result[idx] = math.NaN()
			continue
		}
		result[idx] = element.Float()
	}
	return result, nil
}

// Rows returns the header and the rows in [start, end) as text. The first column is the position of
// the row in the source file.
func (d *Dataset) Rows(start int, end int) ([]string, [][]string) {
	if end > d.Len() {
		end = d.Len()
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return nil, nil
	}

	indexes := make([]int, 0, end-start)
	for idx := start; idx < end; idx++ {
		indexes = append(indexes, idx)
	}

	records := d.frame.Subset(indexes).Records()
	header := append([]string{""}, records[0]...)
	rows := make([][]string, 0, len(records)-1)
	for idx, record := range records[1:] {
		row := append([]string{fmt.Sprintf("%d", d.rowIDs[start+idx])}, record...)
		rows = append(rows, row)
	}
	return header, rows
}

// Copy returns a dataset with the same content that shares nothing with d
func (d *Dataset) Copy() *Dataset {
	rowIDs := make([]int, len(d.rowIDs))
	copy(rowIDs, d.rowIDs)
	return newDataset(d.city, d.frame.Copy(), rowIDs)
}

// subset returns a new dataset with the rows in indexes, keeping their order
func (d *Dataset) subset(indexes []int) *Dataset {
	rowIDs := make([]int, 0, len(indexes))
	for _, idx := range indexes {
		rowIDs = append(rowIDs, d.rowIDs[idx])
	}

	if len(indexes) == 0 {
		return newDataset(d.city, emptyFrame(d.frame), rowIDs)
	}
	return newDataset(d.city, d.frame.Subset(indexes), rowIDs)
}

func (d *Dataset) column(column string) (series.Series, error) {
	if !d.HasColumn(column) {
		return series.Series{}, fmt.Errorf("column %s: %w", column, explorerErrors.ErrMissingAttribute)
	}
	return d.frame.Col(column), nil
}

// headerFrame returns a frame without rows whose text columns are named after header
func headerFrame(header []string) dataframe.DataFrame {
	columns := make([]series.Series, 0, len(header))
	for _, name := range header {
		columns = append(columns, series.New([]string{}, series.String, name))
	}
	return dataframe.New(columns...)
}

// emptyFrame returns a frame without rows that keeps the columns and types of frame
func emptyFrame(frame dataframe.DataFrame) dataframe.DataFrame {
	columns := make([]series.Series, 0, frame.Ncol())
	for _, name := range frame.Names() {
		columnType := frame.Col(name).Type()
		columns = append(columns, series.New([]string{}, columnType, name))
	}
	return dataframe.New(columns...)
}

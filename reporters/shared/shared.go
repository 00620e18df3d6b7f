package shared

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	explorerErrors "bikeshare/domain/errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// StringMode returns the most frequent value of column, ignoring missing cells.
// Fails with ErrEmptyDataset if the column has no values.
func StringMode(ds *dataset.Dataset, column string) (string, error) {
	values, err := ds.Strings(column)
	if err != nil {
		return "", err
	}

	modeCounter := modecounter.NewModeCounterWithData(values)
	if modeCounter.IsEmpty() {
		return "", fmt.Errorf("no values in column %s: %w", column, explorerErrors.ErrEmptyDataset)
	}
	return modeCounter.GetMode(), nil
}

// IntMode returns the most frequent value of an integer column, ignoring missing cells.
// Fails with ErrEmptyDataset if the column has no values.
func IntMode(ds *dataset.Dataset, column string) (int, error) {
	values, err := ds.Ints(column)
	if err != nil {
		return 0, err
	}

	modeCounter := modecounter.NewModeCounterWithData(values)
	if modeCounter.IsEmpty() {
		return 0, fmt.Errorf("no values in column %s: %w", column, explorerErrors.ErrEmptyDataset)
	}
	return modeCounter.GetMode(), nil
}

// ValueCounts returns how many times each value of column appears, most frequent first
func ValueCounts(ds *dataset.Dataset, column string) ([]modecounter.ValueCount[string], error) {
	values, err := ds.Strings(column)
	if err != nil {
		return nil, err
	}
	return modecounter.NewModeCounterWithData(values).GetValueCounts(), nil
}

// ValueCountRows turns value counts into table rows
func ValueCountRows(valueCounts []modecounter.ValueCount[string]) [][]string {
	rows := make([][]string, 0, len(valueCounts))
	for _, valueCount := range valueCounts {
		rows = append(rows, []string{valueCount.Value, strconv.Itoa(valueCount.Count)})
	}
	return rows
}

// FormatNumber prints value without exponent nor trailing zeros, e.g. 280871787 or 936.23
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatSeconds prints an amount of seconds as a duration, e.g. 1h2m3s.
// Returns an empty string if seconds does not fit in a time.Duration.
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.Abs(seconds) >= float64(math.MaxInt64)/float64(time.Second) {
		return ""
	}
	return (time.Duration(seconds * float64(time.Second))).Round(time.Second).String()
}

package userstats

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
	explorerErrors "bikeshare/domain/errors"
	"bikeshare/reporters/shared"
	"bikeshare/ui"
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

const (
	reporterType = "user-stats"
	title        = "Calculating User Stats..."

	missingGenderMessage    = "Gender statistics cannot be calculated because Gender does not appear in the dataframe"
	missingBirthYearMessage = "Birth year statistics cannot be calculated because birth year does not appear in the dataframe"
)

// BirthYearStats years are truncated to integers
// + Earliest: minimum birth year
// + MostRecent: maximum birth year
// + MostCommon: most frequent birth year, the smallest one on ties
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserReporter reports user types and, when the dataset carries them, gender and birth year.
// Not every city has gender and birth year, so both are checked before being calculated.
type UserReporter struct {
	separatorWidth int
}

func NewUserReporter(separatorWidth int) *UserReporter {
	return &UserReporter{
		separatorWidth: separatorWidth,
	}
}

func (ur *UserReporter) GetType() string {
	return reporterType
}

func (ur *UserReporter) Title() string {
	return title
}

// ComputeUserTypes returns the amount of trips per user type
func (ur *UserReporter) ComputeUserTypes(ds *dataset.Dataset) ([]modecounter.ValueCount[string], error) {
	return shared.ValueCounts(ds, trip.UserType)
}

// ComputeGenders returns the amount of trips per gender. Fails with ErrMissingAttribute if ds has no gender.
func (ur *UserReporter) ComputeGenders(ds *dataset.Dataset) ([]modecounter.ValueCount[string], error) {
	if !ds.HasColumn(trip.Gender) {
		return nil, fmt.Errorf("%s: %w", trip.Gender, explorerErrors.ErrMissingAttribute)
	}
	return shared.ValueCounts(ds, trip.Gender)
}

// ComputeBirthYears returns the earliest, most recent and most common birth year.
// Fails with ErrMissingAttribute if ds has no birth year and with ErrEmptyDataset if no trip has one.
func (ur *UserReporter) ComputeBirthYears(ds *dataset.Dataset) (*BirthYearStats, error) {
	if !ds.HasColumn(trip.BirthYear) {
		return nil, fmt.Errorf("%s: %w", trip.BirthYear, explorerErrors.ErrMissingAttribute)
	}

	values, err := ds.Floats(trip.BirthYear)
	if err != nil {
		return nil, err
	}

	birthYears := make([]int, 0, len(values))
	for _, value := range values {
		if math.IsNaN(value) {
			continue
		}
		birthYears = append(birthYears, int(value))
	}

	if len(birthYears) == 0 {
		return nil, fmt.Errorf("no %s values: %w", trip.BirthYear, explorerErrors.ErrEmptyDataset)
	}

	stats := &BirthYearStats{
		Earliest:   birthYears[0],
		MostRecent: birthYears[0],
	}
	for _, birthYear := range birthYears {
		stats.Earliest = min(stats.Earliest, birthYear)
		stats.MostRecent = max(stats.MostRecent, birthYear)
	}
	stats.MostCommon = modecounter.NewModeCounterWithData(birthYears).GetMode()

	return stats, nil
}

func (ur *UserReporter) Report(w io.Writer, ds *dataset.Dataset) error {
	ui.PrintTitle(w, title)
	startTime := time.Now()

	userTypes, err := ur.ComputeUserTypes(ds)
	if err != nil {
		return err
	}
	ur.printCounts(w, "Types of users", trip.UserType, userTypes)

	genders, err := ur.ComputeGenders(ds)
	switch {
	case errors.Is(err, explorerErrors.ErrMissingAttribute):
		ui.PrintNotice(w, missingGenderMessage)
	case err != nil:
		return err
	default:
		fmt.Fprintln(w)
		ur.printCounts(w, "Gender count", trip.Gender, genders)
	}

	birthYears, err := ur.ComputeBirthYears(ds)
	switch {
	case errors.Is(err, explorerErrors.ErrMissingAttribute):
		ui.PrintNotice(w, missingBirthYearMessage)
	case errors.Is(err, explorerErrors.ErrEmptyDataset):
		ui.PrintNotice(w, "Birth year statistics cannot be calculated because no trip has a birth year.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(w)
		ui.PrintValue(w, "Earliest birth year", birthYears.Earliest)
		ui.PrintValue(w, "Most recent birth year", birthYears.MostRecent)
		ui.PrintValue(w, "Common birth year", birthYears.MostCommon)
	}

	ui.PrintElapsed(w, time.Since(startTime).Seconds(), ur.separatorWidth)
	return nil
}

func (ur *UserReporter) printCounts(w io.Writer, label string, column string, valueCounts []modecounter.ValueCount[string]) {
	if len(valueCounts) == 0 {
		ui.PrintNotice(w, fmt.Sprintf("%s: no trips match the selected filters.", label))
		return
	}
	fmt.Fprintf(w, "%s\n", ui.LabelStyle.Render(label+":"))
	fmt.Fprintln(w, ui.RenderTable([]string{column, "count"}, shared.ValueCountRows(valueCounts)))
}

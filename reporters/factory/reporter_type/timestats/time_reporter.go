package timestats

import (
	"bikeshare/dataset"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	explorerErrors "bikeshare/domain/errors"
	"bikeshare/reporters/shared"
	"bikeshare/ui"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	reporterType = "time-stats"
	title        = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats most frequent times of travel
// + Month: 1-based month
// + DayOfWeek: weekday name, e.g. Monday
// + Hour: 0-23
type TimeStats struct {
	Month     int
	DayOfWeek string
	Hour      int
}

type TimeReporter struct {
	separatorWidth int
}

func NewTimeReporter(separatorWidth int) *TimeReporter {
	return &TimeReporter{
		separatorWidth: separatorWidth,
	}
}

func (tr *TimeReporter) GetType() string {
	return reporterType
}

func (tr *TimeReporter) Title() string {
	return title
}

// Compute returns the most frequent month, day of week and hour. Fails with ErrEmptyDataset if ds has no trips.
func (tr *TimeReporter) Compute(ds *dataset.Dataset) (*TimeStats, error) {
	if ds.IsEmpty() {
		return nil, fmt.Errorf("cannot calculate the most frequent times of travel: %w", explorerErrors.ErrEmptyDataset)
	}

	month, err := shared.IntMode(ds, trip.Month)
	if err != nil {
		return nil, err
	}

	dayOfWeek, err := shared.StringMode(ds, trip.DayOfWeek)
	if err != nil {
		return nil, err
	}

	hour, err := shared.IntMode(ds, trip.Hour)
	if err != nil {
		return nil, err
	}

	return &TimeStats{
		Month:     month,
		DayOfWeek: dayOfWeek,
		Hour:      hour,
	}, nil
}

func (tr *TimeReporter) Report(w io.Writer, ds *dataset.Dataset) error {
	ui.PrintTitle(w, title)
	startTime := time.Now()

	stats, err := tr.Compute(ds)
	switch {
	case errors.Is(err, explorerErrors.ErrEmptyDataset):
		ui.PrintNotice(w, "No trips match the selected filters, the most frequent times of travel cannot be calculated.")
	case err != nil:
		return err
	default:
		ui.PrintValue(w, "Most common month", fmt.Sprintf("%s (%d)", selection.MonthName(stats.Month), stats.Month))
		ui.PrintValue(w, "Most common day", stats.DayOfWeek)
		ui.PrintValue(w, "Most common hour", stats.Hour)
	}

	ui.PrintElapsed(w, time.Since(startTime).Seconds(), tr.separatorWidth)
	return nil
}

package stationstats

import (
	"bikeshare/dataset"
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
	reporterType = "station-stats"
	title        = "Calculating The Most Popular Stations and Trip..."
)

// StationStats most popular stations and trip
// + StartStation: most commonly used start station
// + EndStation: most commonly used end station
// + Combination: most frequent start and end station pair, as in the start_end_label column
type StationStats struct {
	StartStation string
	EndStation   string
	Combination  string
}

type StationReporter struct {
	separatorWidth int
}

func NewStationReporter(separatorWidth int) *StationReporter {
	return &StationReporter{
		separatorWidth: separatorWidth,
	}
}

func (sr *StationReporter) GetType() string {
	return reporterType
}

func (sr *StationReporter) Title() string {
	return title
}

// Compute returns the most popular stations and trip. Fails with ErrEmptyDataset if ds has no trips
// or if any of the station columns has no values.
func (sr *StationReporter) Compute(ds *dataset.Dataset) (*StationStats, error) {
	if ds.IsEmpty() {
		return nil, fmt.Errorf("cannot calculate the most popular stations: %w", explorerErrors.ErrEmptyDataset)
	}

	startStation, err := shared.StringMode(ds, trip.StartStation)
	if err != nil {
		return nil, err
	}

	endStation, err := shared.StringMode(ds, trip.EndStation)
	if err != nil {
		return nil, err
	}

	combination, err := shared.StringMode(ds, trip.StartEndLabel)
	if err != nil {
		return nil, err
	}

	return &StationStats{
		StartStation: startStation,
		EndStation:   endStation,
		Combination:  combination,
	}, nil
}

func (sr *StationReporter) Report(w io.Writer, ds *dataset.Dataset) error {
	ui.PrintTitle(w, title)
	startTime := time.Now()

	stats, err := sr.Compute(ds)
	switch {
	case errors.Is(err, explorerErrors.ErrEmptyDataset):
		ui.PrintNotice(w, "No trips match the selected filters, the most popular stations cannot be calculated.")
	case err != nil:
		return err
	default:
		ui.PrintValue(w, "Most common start", stats.StartStation)
		ui.PrintValue(w, "Most common end", stats.EndStation)
		ui.PrintValue(w, "Most common combination", stats.Combination)
	}

	ui.PrintElapsed(w, time.Since(startTime).Seconds(), sr.separatorWidth)
	return nil
}

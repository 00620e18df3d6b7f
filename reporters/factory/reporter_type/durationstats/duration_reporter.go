package durationstats

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/durationaccumulator"
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
	reporterType = "duration-stats"
	title        = "Calculating Trip Duration..."
)

// DurationStats accumulated durations and, if the dataset has station coordinates, distances
// + Durations: trip durations in seconds
// + Distances: trip distances in kilometers, nil if the dataset has no coordinates
type DurationStats struct {
	Durations *durationaccumulator.DurationAccumulator
	Distances *distanceaccumulator.DistanceAccumulator
}

type DurationReporter struct {
	separatorWidth int
}

func NewDurationReporter(separatorWidth int) *DurationReporter {
	return &DurationReporter{
		separatorWidth: separatorWidth,
	}
}

func (dr *DurationReporter) GetType() string {
	return reporterType
}

func (dr *DurationReporter) Title() string {
	return title
}

// Compute accumulates every trip duration, skipping missing ones
func (dr *DurationReporter) Compute(ds *dataset.Dataset) (*DurationStats, error) {
	durations, err := ds.Floats(trip.Duration)
	if err != nil {
		return nil, err
	}

	durationAccumulator := durationaccumulator.NewDurationAccumulator()
	for _, duration := range durations {
		if math.IsNaN(duration) {
			continue
		}
		durationAccumulator.UpdateAccumulator(duration)
	}

	distanceAccumulator, err := dr.computeDistances(ds)
	if err != nil && !errors.Is(err, explorerErrors.ErrMissingAttribute) {
		return nil, err
	}

	return &DurationStats{
		Durations: durationAccumulator,
		Distances: distanceAccumulator,
	}, nil
}

// computeDistances accumulates the distance of every trip with both coordinates.
// Fails with ErrMissingAttribute if ds has no coordinate columns.
func (dr *DurationReporter) computeDistances(ds *dataset.Dataset) (*distanceaccumulator.DistanceAccumulator, error) {
	if !ds.HasColumns(trip.CoordinateColumns...) {
		return nil, fmt.Errorf("station coordinates: %w", explorerErrors.ErrMissingAttribute)
	}

	coordinates := make([][]float64, 0, len(trip.CoordinateColumns))
	for _, column := range trip.CoordinateColumns {
		values, err := ds.Floats(column)
		if err != nil {
			return nil, err
		}
		coordinates = append(coordinates, values)
	}

	distanceAccumulator := distanceaccumulator.NewDistanceAccumulator()
	for idx := 0; idx < ds.Len(); idx++ {
		latStart, longStart := coordinates[0][idx], coordinates[1][idx]
		latEnd, longEnd := coordinates[2][idx], coordinates[3][idx]
		if math.IsNaN(latStart) || math.IsNaN(longStart) || math.IsNaN(latEnd) || math.IsNaN(longEnd) {
			continue
		}
		distanceAccumulator.AddTrip(latStart, longStart, latEnd, longEnd)
	}
	return distanceAccumulator, nil
}

func (dr *DurationReporter) Report(w io.Writer, ds *dataset.Dataset) error {
	ui.PrintTitle(w, title)
	startTime := time.Now()

	stats, err := dr.Compute(ds)
	if err != nil {
		return err
	}

	total := stats.Durations.GetTotalDuration()
	ui.PrintValue(w, "Total travel time (seconds)", withDuration(total))

	mean, err := stats.Durations.GetAverageDuration()
	if errors.Is(err, explorerErrors.ErrEmptyDataset) {
		ui.PrintNotice(w, "Average travel time cannot be calculated because no trips match the selected filters.")
	} else {
		ui.PrintValue(w, "Average travel time (seconds)", withDuration(mean))
	}

	if stats.Distances == nil {
		ui.PrintNotice(w, "Distance statistics cannot be calculated because station coordinates do not appear in the dataset")
	} else {
		ui.PrintValue(w, "Total distance (km)", shared.FormatNumber(stats.Distances.GetTotalDistance()))
		meanDistance, err := stats.Distances.GetAverageDistance()
		if errors.Is(err, explorerErrors.ErrEmptyDataset) {
			ui.PrintNotice(w, "Average distance cannot be calculated because no trip has station coordinates.")
		} else {
			ui.PrintValue(w, "Average distance (km)", shared.FormatNumber(meanDistance))
		}
	}

	ui.PrintElapsed(w, time.Since(startTime).Seconds(), dr.separatorWidth)
	return nil
}

// withDuration e.g. "3723 (1h2m3s)"
func withDuration(seconds float64) string {
	duration := shared.FormatSeconds(seconds)
	if duration == "" {
		return shared.FormatNumber(seconds)
	}
	return fmt.Sprintf("%s (%s)", shared.FormatNumber(seconds), duration)
}

package factory

import (
	"bikeshare/dataset"
	"bikeshare/reporters/factory/reporter_type/durationstats"
	"bikeshare/reporters/factory/reporter_type/stationstats"
	"bikeshare/reporters/factory/reporter_type/timestats"
	"bikeshare/reporters/factory/reporter_type/userstats"
	"fmt"
	"io"
)

const (
	TimeStats     = "time-stats"
	StationStats  = "station-stats"
	DurationStats = "duration-stats"
	UserStats     = "user-stats"
)

// ReportOrder order in which the reporters run
var ReportOrder = []string{TimeStats, StationStats, DurationStats, UserStats}

// IReporter computes statistics over a dataset and writes them. Reporters only read the dataset.
type IReporter interface {
	GetType() string
	Title() string
	Report(w io.Writer, ds *dataset.Dataset) error
}

// NewReporter initialize a reporter of some type.
// Possible reporter types are: time-stats, station-stats, duration-stats, user-stats
func NewReporter(reporterType string, separatorWidth int) (IReporter, error) {
	switch reporterType {
	case TimeStats:
		return timestats.NewTimeReporter(separatorWidth), nil
	case StationStats:
		return stationstats.NewStationReporter(separatorWidth), nil
	case DurationStats:
		return durationstats.NewDurationReporter(separatorWidth), nil
	case UserStats:
		return userstats.NewUserReporter(separatorWidth), nil
	}

	return nil, fmt.Errorf("[method: NewReporter][status: error] Invalid reporter type %s", reporterType)
}

// NewReporters returns every reporter in ReportOrder
func NewReporters(separatorWidth int) []IReporter {
	reporters := make([]IReporter, 0, len(ReportOrder))
	for _, reporterType := range ReportOrder {
		reporter, _ := NewReporter(reporterType, separatorWidth)
		reporters = append(reporters, reporter)
	}
	return reporters
}

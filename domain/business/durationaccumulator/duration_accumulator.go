package durationaccumulator

import (
	explorerErrors "bikeshare/domain/errors"
	"fmt"
)

// DurationAccumulator collects trip durations
// + Counter: amount of durations collected
// + TotalDuration: sum of the durations, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(newDuration float64) {
	da.Counter += 1
	da.TotalDuration += newDuration
}

func (da *DurationAccumulator) GetTotalDuration() float64 {
	return da.TotalDuration
}

// GetAverageDuration returns the mean duration. Fails with ErrEmptyDataset if nothing was collected.
func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("cannot get average duration, counter is zero: %w", explorerErrors.ErrEmptyDataset)
	}
	return da.TotalDuration / float64(da.Counter), nil
}

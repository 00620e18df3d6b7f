package distanceaccumulator

import (
	"errors"
	"math"
	"testing"

	explorerErrors "bikeshare/domain/errors"
)

func TestCalculateDistance(t *testing.T) {
	if got := CalculateDistance(41.8781, -87.6298, 41.8781, -87.6298); got != 0 {
		t.Errorf("same station should be 0 km apart, got %v", got)
	}

	// one degree of latitude is roughly 111 km
	got := CalculateDistance(41.0, -87.0, 42.0, -87.0)
	if math.Abs(got-111.2) > 1 {
		t.Errorf("expected ~111 km, got %v", got)
	}
}

func TestAverageDistance(t *testing.T) {
	accumulator := NewDistanceAccumulator()
	accumulator.AddTrip(41.0, -87.0, 42.0, -87.0)
	accumulator.AddTrip(41.0, -87.0, 41.0, -87.0)

	average, err := accumulator.GetAverageDistance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(average-accumulator.GetTotalDistance()/2) > 1e-9 {
		t.Errorf("average %v should be half of total %v", average, accumulator.GetTotalDistance())
	}
}

func TestAverageDistanceEmpty(t *testing.T) {
	if _, err := NewDistanceAccumulator().GetAverageDistance(); !errors.Is(err, explorerErrors.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

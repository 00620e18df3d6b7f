package durationstats

import (
	"bikeshare/dataset"
	"bikeshare/dataset/datasettest"
	"bikeshare/domain/entities/selection"
	explorerErrors "bikeshare/domain/errors"
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCompute(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)

	stats, err := NewDurationReporter(40).Compute(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Durations.GetTotalDuration() != 3450 {
		t.Errorf("expected total 3450, got %v", stats.Durations.GetTotalDuration())
	}
	mean, err := stats.Durations.GetAverageDuration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean != 690 {
		t.Errorf("expected mean 690, got %v", mean)
	}
	if stats.Distances != nil {
		t.Error("chicago has no coordinates, distances should be nil")
	}
}

func TestMeanIsTotalOverTrips(t *testing.T) {
	ds := datasettest.Load(t, "washington", datasettest.WashingtonCSV)

	stats, err := NewDurationReporter(40).Compute(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := stats.Durations.GetTotalDuration()
	mean, _ := stats.Durations.GetAverageDuration()
	if total < 0 {
		t.Errorf("total must not be negative, got %v", total)
	}
	if math.Abs(mean-total/float64(ds.Len())) > 1e-9 {
		t.Errorf("mean %v should be total %v over %d trips", mean, total, ds.Len())
	}
	if math.Abs(total-5986.041) > 1e-6 {
		t.Errorf("expected total 5986.041, got %v", total)
	}
}

func TestComputeDistances(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.CoordinatesCSV)

	stats, err := NewDurationReporter(40).Compute(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Distances == nil {
		t.Fatal("expected distances")
	}

	// the trip without end coordinates is skipped
	if stats.Distances.Counter != 2 {
		t.Errorf("expected 2 trips with distance, got %d", stats.Distances.Counter)
	}
	if math.Abs(stats.Distances.GetTotalDistance()-111.2) > 1 {
		t.Errorf("expected ~111 km, got %v", stats.Distances.GetTotalDistance())
	}
}

func TestReport(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)

	var out bytes.Buffer
	if err := NewDurationReporter(40).Report(&out, ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, expected := range []string{
		title,
		"Total travel time (seconds): 3450 (57m30s)",
		"Average travel time (seconds): 690 (11m30s)",
		"station coordinates do not appear in the dataset",
	} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("output should contain %q:\n%s", expected, out.String())
		}
	}
}

func TestReportEmptyDataset(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)
	empty := dataset.Filter(ds, selection.NewSelection("chicago", "december", selection.All))

	stats, err := NewDurationReporter(40).Compute(empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Durations.GetTotalDuration() != 0 {
		t.Errorf("expected total 0, got %v", stats.Durations.GetTotalDuration())
	}
	if _, err := stats.Durations.GetAverageDuration(); !errors.Is(err, explorerErrors.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}

	var out bytes.Buffer
	if err := NewDurationReporter(40).Report(&out, empty); err != nil {
		t.Fatalf("an empty dataset must not fail the report: %v", err)
	}
	if !strings.Contains(out.String(), "Total travel time (seconds): 0") {
		t.Errorf("expected a zero total:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Average travel time cannot be calculated") {
		t.Errorf("expected an explanatory message:\n%s", out.String())
	}
}

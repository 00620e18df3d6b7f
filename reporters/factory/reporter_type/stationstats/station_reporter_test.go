package stationstats

import (
	"bikeshare/dataset"
	"bikeshare/dataset/datasettest"
	"bikeshare/domain/entities/selection"
	explorerErrors "bikeshare/domain/errors"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCompute(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)

	stats, err := NewStationReporter(40).Compute(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := StationStats{
		StartStation: "Canal St & Adams St",
		EndStation:   "Clinton St & Madison St",
		Combination:  "Canal St & Adams St - Clinton St & Madison St",
	}
	if *stats != expected {
		t.Errorf("expected %+v, got %+v", expected, *stats)
	}
}

func TestComputeEmptyDataset(t *testing.T) {
	ds := datasettest.Load(t, "washington", datasettest.WashingtonCSV)
	empty := dataset.Filter(ds, selection.NewSelection("washington", "january", selection.All))

	if _, err := NewStationReporter(40).Compute(empty); !errors.Is(err, explorerErrors.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestReport(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)

	var out bytes.Buffer
	if err := NewStationReporter(40).Report(&out, ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, expected := range []string{
		title,
		"Most common start: Canal St & Adams St",
		"Most common end: Clinton St & Madison St",
		"Most common combination: Canal St & Adams St - Clinton St & Madison St",
	} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("output should contain %q:\n%s", expected, out.String())
		}
	}
}

func TestReportEmptyDataset(t *testing.T) {
	ds := datasettest.Load(t, "washington", datasettest.WashingtonCSV)
	empty := dataset.Filter(ds, selection.NewSelection("washington", "january", selection.All))

	var out bytes.Buffer
	if err := NewStationReporter(40).Report(&out, empty); err != nil {
		t.Fatalf("an empty dataset must not fail the report: %v", err)
	}
	if !strings.Contains(out.String(), "cannot be calculated") {
		t.Errorf("expected an explanatory message:\n%s", out.String())
	}
}

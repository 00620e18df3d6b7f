package dataset_test

import (
	"bikeshare/dataset"
	"bikeshare/dataset/datasettest"
	"bikeshare/domain/entities/trip"
	explorerErrors "bikeshare/domain/errors"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDerivesColumns(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)

	// the row with an invalid start time is dropped
	if ds.Len() != 5 {
		t.Fatalf("expected 5 trips, got %d", ds.Len())
	}

	for _, column := range []string{trip.Month, trip.DayOfWeek, trip.Hour, trip.StartEndLabel} {
		if !ds.HasColumn(column) {
			t.Errorf("derived column %s is missing", column)
		}
	}

	months, _ := ds.Ints(trip.Month)
	assertInts(t, "months", months, []int{1, 1, 3, 6, 1})

	hours, _ := ds.Ints(trip.Hour)
	assertInts(t, "hours", hours, []int{9, 17, 8, 17, 17})

	days, _ := ds.Strings(trip.DayOfWeek)
	assertStrings(t, "days", days, []string{"Sunday", "Monday", "Friday", "Friday", "Friday"})
}

func TestLoadBuildsStartEndLabel(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)

	// the trip without end station has no label
	labels, err := ds.Strings(trip.StartEndLabel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertStrings(t, "labels", labels, []string{
		"Canal St & Adams St - Clinton St & Madison St",
		"Clinton St & Madison St - Wells St & Concord Ln",
		"Canal St & Adams St - Clinton St & Madison St",
		"Wells St & Concord Ln - Canal St & Adams St",
	})
}

func TestLoadKeepsOptionalColumns(t *testing.T) {
	chicago := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)
	if !chicago.HasColumns(trip.Gender, trip.BirthYear) {
		t.Error("chicago should have gender and birth year")
	}

	washington := datasettest.Load(t, "washington", datasettest.WashingtonCSV)
	if washington.HasColumn(trip.Gender) || washington.HasColumn(trip.BirthYear) {
		t.Error("washington should not have gender nor birth year")
	}

	if _, err := washington.Strings(trip.Gender); !errors.Is(err, explorerErrors.ErrMissingAttribute) {
		t.Errorf("expected ErrMissingAttribute, got %v", err)
	}
}

func TestLoadTreatsEmptyCellsAsMissing(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)

	genders, _ := ds.Strings(trip.Gender)
	if len(genders) != 4 {
		t.Errorf("expected 4 genders, got %v", genders)
	}

	birthYears, _ := ds.Floats(trip.BirthYear)
	if len(birthYears) != ds.Len() {
		t.Fatalf("Floats must return one value per row, got %d", len(birthYears))
	}
	if !math.IsNaN(birthYears[1]) {
		t.Errorf("expected NaN for the missing birth year, got %v", birthYears[1])
	}
}

func TestLoadFromFile(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "washington.csv"), []byte(datasettest.WashingtonCSV), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	loader := datasettest.NewLoader(dataDir, map[string]string{
		"washington": "washington.csv",
		"chicago":    "chicago.csv",
	})

	ds, err := loader.Load("washington")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Len() != 7 || ds.GetCity() != "washington" {
		t.Errorf("unexpected dataset: city %s, %d trips", ds.GetCity(), ds.Len())
	}

	_, err = loader.Load("chicago")
	if !errors.Is(err, explorerErrors.ErrDatasetNotFound) {
		t.Errorf("expected ErrDatasetNotFound, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "chicago.csv") {
		t.Errorf("error should name the missing file: %v", err)
	}

	_, err = loader.Load("boston")
	if !errors.Is(err, explorerErrors.ErrUnknownCity) {
		t.Errorf("expected ErrUnknownCity, got %v", err)
	}
}

func TestLoadRequiresColumns(t *testing.T) {
	content := "Start Time,Trip Duration\n2017-01-01 00:00:00,10\n"
	_, err := datasettest.NewLoader("", nil).LoadFromReader("chicago", strings.NewReader(content))
	if !errors.Is(err, explorerErrors.ErrInvalidDataset) {
		t.Errorf("expected ErrInvalidDataset, got %v", err)
	}
}

func TestLoadHeaderWithoutTrips(t *testing.T) {
	content := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender\n"
	ds, err := datasettest.NewLoader("", nil).LoadFromReader("chicago", strings.NewReader(content))
	if err != nil {
		t.Fatalf("a header without trips is a valid dataset: %v", err)
	}

	if !ds.IsEmpty() {
		t.Errorf("expected an empty dataset, got %d trips", ds.Len())
	}
	for _, column := range []string{trip.StartTime, trip.Gender, trip.Month, trip.DayOfWeek, trip.Hour, trip.StartEndLabel} {
		if !ds.HasColumn(column) {
			t.Errorf("column %s is missing", column)
		}
	}
	if ds.HasColumn(trip.BirthYear) {
		t.Error("birth year is not in the header")
	}
}

func TestLoadWithoutHeader(t *testing.T) {
	for _, content := range []string{"", "\n"} {
		_, err := datasettest.NewLoader("", nil).LoadFromReader("chicago", strings.NewReader(content))
		if !errors.Is(err, explorerErrors.ErrInvalidDataset) {
			t.Errorf("content %q: expected ErrInvalidDataset, got %v", content, err)
		}
	}
}

func TestLoadTriesEveryTimestampLayout(t *testing.T) {
	content := "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-01-01 10:00:00,10,A,B,Subscriber\n" +
		"2017-02-01T11:30:00Z,20,B,A,Subscriber\n"

	loader := dataset.NewLoader("", nil, []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05Z07:00"}, " - ")
	ds, err := loader.LoadFromReader("chicago", strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	months, _ := ds.Ints(trip.Month)
	assertInts(t, "months", months, []int{1, 2})
}

func TestRows(t *testing.T) {
	ds := datasettest.Load(t, "chicago", datasettest.ChicagoCSV)

	header, rows := ds.Rows(3, 10)
	if len(rows) != 2 {
		t.Fatalf("expected the last 2 rows, got %d", len(rows))
	}
	if len(header) != len(ds.Columns())+1 {
		t.Errorf("header should have the row position plus every column, got %v", header)
	}
	if rows[0][0] != "3" || rows[1][0] != "4" {
		t.Errorf("unexpected row positions %s, %s", rows[0][0], rows[1][0])
	}

	if _, rows := ds.Rows(5, 10); rows != nil {
		t.Errorf("expected no rows past the end, got %v", rows)
	}
}

func assertInts(t *testing.T, name string, got []int, expected []int) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: expected %v, got %v", name, expected, got)
	}
	for idx := range expected {
		if got[idx] != expected[idx] {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
			return
		}
	}
}

func assertStrings(t *testing.T, name string, got []string, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: expected %v, got %v", name, expected, got)
	}
	for idx := range expected {
		if got[idx] != expected[idx] {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
			return
		}
	}
}

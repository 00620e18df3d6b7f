package dataset

import (
	"bikeshare/domain/entities/trip"
	explorerErrors "bikeshare/domain/errors"
	"bytes"
	"encoding/csv"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path/filepath"
	"time"
)

const component = "loader"

// missingValues cells with these values are treated as missing
var missingValues = []string{"", "NA", "NaN", "<nil>"}

// Loader reads the trips file of a city and builds its Dataset
// + dataDir: directory containing the city files
// + cityFiles: city key -> file name
// + timestampLayouts: layouts tried, in order, to parse the start time
// + stationSeparator: text between start and end station in the start_end_label column
type Loader struct {
	dataDir          string
	cityFiles        map[string]string
	timestampLayouts []string
	stationSeparator string
}

func NewLoader(dataDir string, cityFiles map[string]string, timestampLayouts []string, stationSeparator string) *Loader {
	return &Loader{
		dataDir:          dataDir,
		cityFiles:        cityFiles,
		timestampLayouts: timestampLayouts,
		stationSeparator: stationSeparator,
	}
}

func (l *Loader) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][city: %s][method: %s][status: ERROR] %s: %s", component, city, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][city: %s][method: %s][status: OK] %s", component, city, method, message)
}

// GetFilePath returns the path to the trips file of city
func (l *Loader) GetFilePath(city string) (string, error) {
	filename, ok := l.cityFiles[city]
	if !ok {
		return "", fmt.Errorf("%s: %w", city, explorerErrors.ErrUnknownCity)
	}
	return filepath.Join(l.dataDir, filename), nil
}

// Load reads the trips file of city. Fails with ErrDatasetNotFound if the file cannot be opened
func (l *Loader) Load(city string) (*Dataset, error) {
	path, err := l.GetFilePath(city)
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", "invalid city", err))
		return nil, err
	}

	dataFile, err := os.Open(path)
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", fmt.Sprintf("error opening %s", path), err))
		return nil, fmt.Errorf("cannot read %s: %s: %w", path, err.Error(), explorerErrors.ErrDatasetNotFound)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage(city, "Load", fmt.Sprintf("error closing %s", path), err))
		}
	}(dataFile)

	return l.LoadFromReader(city, dataFile)
}

// LoadFromReader builds the Dataset of city from CSV content with a header row.
// A header without trips gives an empty Dataset.
func (l *Loader) LoadFromReader(city string, reader io.Reader) (*Dataset, error) {
	startTime := time.Now()
	content, err := io.ReadAll(reader)
	if err != nil {
		log.Error(l.getLogMessage(city, "LoadFromReader", "error reading CSV", err))
		return nil, fmt.Errorf("%s: %w", err.Error(), explorerErrors.ErrInvalidDataset)
	}

	frame := dataframe.ReadCSV(
		bytes.NewReader(content),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
	)
	if frame.Err != nil {
		header, headerErr := readHeaderOnly(content)
		if headerErr != nil {
			log.Error(l.getLogMessage(city, "LoadFromReader", "error parsing CSV", frame.Err))
			return nil, fmt.Errorf("%s: %w", frame.Err.Error(), explorerErrors.ErrInvalidDataset)
		}
		log.Warn(l.getLogMessage(city, "LoadFromReader", "file has a header but no trips", nil))
		frame = headerFrame(header)
	}

	for _, column := range trip.RequiredColumns {
		if !hasColumn(frame, column) {
			return nil, fmt.Errorf("column %s not found: %w", column, explorerErrors.ErrInvalidDataset)
		}
	}

	dataset, err := l.deriveColumns(city, frame)
	if err != nil {
		log.Error(l.getLogMessage(city, "LoadFromReader", "error deriving columns", err))
		return nil, err
	}

	log.Debug(l.getLogMessage(city, "LoadFromReader", fmt.Sprintf("%v trips loaded in %s", dataset.Len(), time.Since(startTime)), nil))
	return dataset, nil
}

// deriveColumns adds month, day_of_week, hour and start_end_label. Rows whose start time cannot be parsed
// are dropped, so the derived columns always match the start time of the row.
func (l *Loader) deriveColumns(city string, frame dataframe.DataFrame) (*Dataset, error) {
	startTimes := frame.Col(trip.StartTime)
	startStations := frame.Col(trip.StartStation)
	endStations := frame.Col(trip.EndStation)

	var (
		validRows []int
		months    []int
		days      []string
		hours     []int
		labels    []string
	)
	for idx := 0; idx < frame.Nrow(); idx++ {
		startTime, err := l.parseTimestamp(startTimes.Elem(idx))
		if err != nil {
			log.Debug(l.getLogMessage(city, "deriveColumns", fmt.Sprintf("dropping row %v", idx), err))
			continue
		}

		validRows = append(validRows, idx)
		months = append(months, int(startTime.Month()))
		days = append(days, startTime.Weekday().String())
		hours = append(hours, startTime.Hour())
		labels = append(labels, l.getStartEndLabel(startStations.Elem(idx), endStations.Elem(idx)))
	}

	if dropped := frame.Nrow() - len(validRows); dropped > 0 {
		log.Warn(l.getLogMessage(city, "deriveColumns", fmt.Sprintf("%v rows dropped due to an invalid %s", dropped, trip.StartTime), nil))
		if len(validRows) == 0 {
			frame = emptyFrame(frame)
		} else {
			frame = frame.Subset(validRows)
		}
	}

	frame = frame.
		Mutate(series.New(months, series.Int, trip.Month)).
		Mutate(series.New(days, series.String, trip.DayOfWeek)).
		Mutate(series.New(hours, series.Int, trip.Hour)).
		Mutate(series.New(labels, series.String, trip.StartEndLabel))
	if frame.Err != nil {
		return nil, fmt.Errorf("%s: %w", frame.Err.Error(), explorerErrors.ErrInvalidDataset)
	}

	return newDataset(city, frame, validRows), nil
}

func (l *Loader) parseTimestamp(element series.Element) (time.Time, error) {
	if element.IsNA() {
		return time.Time{}, fmt.Errorf("missing %s", trip.StartTime)
	}

	value := element.String()
	for _, layout := range l.timestampLayouts {
		timestamp, err := time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s: %s", trip.StartTime, value)
}

// getStartEndLabel joins both stations. If any of them is missing the label is missing too.
func (l *Loader) getStartEndLabel(startStation series.Element, endStation series.Element) string {
	if startStation.IsNA() || endStation.IsNA() {
		return "NaN"
	}
	return startStation.String() + l.stationSeparator + endStation.String()
}

// readHeaderOnly returns the header of content when it is the only record
func readHeaderOnly(content []byte) ([]string, error) {
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("expected only a header, found %d records", len(records))
	}
	return records[0], nil
}

func hasColumn(frame dataframe.DataFrame, column string) bool {
	for _, name := range frame.Names() {
		if name == column {
			return true
		}
	}
	return false
}

// Package datasettest provides trip fixtures for tests of packages that work with datasets.
package datasettest

import (
	"bikeshare/dataset"
	"strings"
	"testing"
)

const (
	TimestampLayout  = "2006-01-02 15:04:05"
	StationSeparator = " - "
)

// ChicagoCSV has gender and birth year. The last row has an invalid start time and is dropped on load.
// Row 1 lacks gender and birth year, row 4 lacks the end station.
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-01-01 09:07:57,2017-01-01 09:12:57,300,Canal St & Adams St,Clinton St & Madison St,Subscriber,Male,1980.0
955915,2017-01-02 17:00:00,2017-01-02 17:10:00,600,Clinton St & Madison St,Wells St & Concord Ln,Customer,,
9031,2017-03-03 08:15:00,2017-03-03 08:35:00,1200,Canal St & Adams St,Clinton St & Madison St,Subscriber,Female,1992.0
304487,2017-06-23 17:30:00,2017-06-23 17:45:00,900,Wells St & Concord Ln,Canal St & Adams St,Subscriber,Male,1975.0
45207,2017-01-06 17:45:00,2017-01-06 17:52:30,450,Canal St & Adams St,,Subscriber,Female,1992.0
1473887,not a date,2017-05-25 18:20:00,720,Canal St & Adams St,Wells St & Concord Ln,Subscriber,Male,1990.0
`

// WashingtonCSV has neither gender nor birth year
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
1330037,2017-05-30 01:02:59,2017-05-30 01:13:37,637.251,17th St & Massachusetts Ave NW,5th & K St NW,Subscriber
665458,2017-04-02 07:48:35,2017-04-02 08:19:03,1827.341,Constitution Ave & 2nd St NW/DOL,Henry Bacon Dr & Lincoln Memorial Circle NW,Customer
1481135,2017-06-10 08:36:28,2017-06-10 09:02:17,1549.427,Henry Bacon Dr & Lincoln Memorial Circle NW,Maine Ave & 7th St SW,Subscriber
1148202,2017-05-14 07:18:18,2017-05-14 07:24:56,398.0,1st & K St SE,Eastern Market Metro / Pennsylvania Ave & 7th St SE,Subscriber
1594275,2017-06-20 06:40:53,2017-06-20 06:52:15,682.407,Rhode Island & Connecticut Ave NW,Massachusetts Ave & Dupont Circle NW,Subscriber
`

// CoordinatesCSV carries station coordinates. The second trip misses its end coordinates.
const CoordinatesCSV = `Start Time,Trip Duration,Start Station,End Station,User Type,Start Latitude,Start Longitude,End Latitude,End Longitude
2017-02-01 10:00:00,600,North,South,Subscriber,42.0,-87.0,41.0,-87.0
2017-02-02 10:00:00,300,South,North,Customer,41.0,-87.0,,
2017-02-03 10:00:00,120,South,South,Subscriber,41.0,-87.0,41.0,-87.0
`

// NewLoader returns a loader configured as in production, reading from dataDir
func NewLoader(dataDir string, cityFiles map[string]string) *dataset.Loader {
	return dataset.NewLoader(dataDir, cityFiles, []string{TimestampLayout}, StationSeparator)
}

// Load builds the dataset of city from content, failing the test on error
func Load(t *testing.T, city string, content string) *dataset.Dataset {
	t.Helper()

	ds, err := NewLoader("", nil).LoadFromReader(city, strings.NewReader(content))
	if err != nil {
		t.Fatalf("loading %s fixture: %v", city, err)
	}
	return ds
}

// Rows returns every row of ds as shown to the user
func Rows(ds *dataset.Dataset) [][]string {
	_, rows := ds.Rows(0, ds.Len())
	return rows
}

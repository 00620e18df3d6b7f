package distanceaccumulator

import (
	explorerErrors "bikeshare/domain/errors"
	"fmt"
	"github.com/umahmood/haversine"
)

// DistanceAccumulator struct that collects the distance traveled in trips
// + Counter: amount of trips collected
// + TotalDistance: sum of distances traveled, in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

// AddTrip accumulates the distance between the start and end coordinates of a trip
func (da *DistanceAccumulator) AddTrip(latStart float64, longStart float64, latEnd float64, longEnd float64) {
	da.UpdateAccumulator(CalculateDistance(latStart, longStart, latEnd, longEnd))
}

func (da *DistanceAccumulator) GetTotalDistance() float64 {
	return da.TotalDistance
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("cannot get average distance, counter is zero: %w", explorerErrors.ErrEmptyDataset)
	}
	return da.TotalDistance / float64(da.Counter), nil
}

// CalculateDistance returns the distance in kilometers between two stations using haversine formula
func CalculateDistance(latStartStation float64, longStartStation float64, latEndStation float64, longEndStation float64) float64 {
	station1 := haversine.Coord{Lat: latStartStation, Lon: longStartStation}
	station2 := haversine.Coord{Lat: latEndStation, Lon: longEndStation}

	_, km := haversine.Distance(station1, station2)
	return km
}

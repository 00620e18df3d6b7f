package dataset

import (
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"fmt"
	log "github.com/sirupsen/logrus"
)

// Filter returns the trips of dataset that match the month and day of sel, in the same order.
// The city of sel is not checked, dataset is assumed to be the one of that city.
// If sel filters nothing a copy of dataset is returned. dataset is never modified.
func Filter(dataset *Dataset, sel selection.Selection) *Dataset {
	if !sel.FiltersMonth() && !sel.FiltersDay() {
		return dataset.Copy()
	}

	months := dataset.frame.Col(trip.Month)
	days := dataset.frame.Col(trip.DayOfWeek)
	monthIndex := sel.MonthIndex()
	dayName := sel.DayName()

	indexes := make([]int, 0, dataset.Len())
	for idx := 0; idx < dataset.Len(); idx++ {
		if sel.FiltersMonth() {
			month, err := months.Elem(idx).Int()
			if err != nil || month != monthIndex {
				continue
			}
		}

		if sel.FiltersDay() && days.Elem(idx).String() != dayName {
			continue
		}
		indexes = append(indexes, idx)
	}

	log.Debugf("[component: filter][city: %s][status: OK] %s kept %v of %v trips", dataset.GetCity(), sel.String(), len(indexes), dataset.Len())
	return dataset.subset(indexes)
}

// FilterSummary describes the active filters, e.g. "month: March, day: all"
func FilterSummary(sel selection.Selection) string {
	month := selection.All
	if sel.FiltersMonth() {
		month = selection.MonthName(sel.MonthIndex())
	}
	day := selection.All
	if sel.FiltersDay() {
		day = sel.DayName()
	}
	return fmt.Sprintf("month: %s, day: %s", month, day)
}

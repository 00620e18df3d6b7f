package selection

import (
	"bikeshare/utils"
	"fmt"
)

// All disables the month or day filter
const All = "all"

var (
	Months = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Selection filters chosen by the user
// + City: key of the city to analyze
// + Month: lowercase month name or "all"
// + Day: lowercase weekday name or "all"
type Selection struct {
	City  string
	Month string
	Day   string
}

func NewSelection(city string, month string, day string) Selection {
	return Selection{
		City:  city,
		Month: month,
		Day:   day,
	}
}

// FiltersMonth returns true if the selection restricts the month
func (s Selection) FiltersMonth() bool {
	return s.Month != All
}

// FiltersDay returns true if the selection restricts the day of week
func (s Selection) FiltersDay() bool {
	return s.Day != All
}

// MonthIndex returns the 1-based index of the selected month, 0 if the month is not filtered
func (s Selection) MonthIndex() int {
	return MonthIndex(s.Month)
}

// DayName returns the selected day as it appears in the day_of_week column, e.g. "Monday"
func (s Selection) DayName() string {
	return utils.TitleCase(s.Day)
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.City, s.Month, s.Day)
}

// MonthIndex returns the 1-based index of month, 0 if month is not a month name
func MonthIndex(month string) int {
	for idx := range Months {
		if Months[idx] == month {
			return idx + 1
		}
	}
	return 0
}

// MonthName returns the title-cased name of the 1-based month index
func MonthName(month int) string {
	if month < 1 || month > len(Months) {
		return ""
	}
	return utils.TitleCase(Months[month-1])
}

// IsValidMonth returns true for a lowercase month name or "all"
func IsValidMonth(month string) bool {
	return month == All || utils.ContainsString(month, Months)
}

// IsValidDay returns true for a lowercase weekday name or "all"
func IsValidDay(day string) bool {
	return day == All || utils.ContainsString(day, Days)
}

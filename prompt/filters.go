package prompt

import (
	"bikeshare/domain/entities/selection"
	"bikeshare/ui"
	"bikeshare/utils"
	"fmt"
	"sort"
	"strings"
)

const (
	greeting            = "Hello! Let's explore some US bikeshare data!"
	monthQuestion       = "Please enter a month (January, February, March, etc.) or 'all': "
	dayQuestion         = "Please enter a day of the week (Monday, Tuesday, etc.) or 'all': "
	invalidCityMessage  = "Invalid input. Please enter one of the provided cities."
	invalidMonthMessage = "Invalid input. Please enter a full month name (ex. January)."
	invalidDayMessage   = "Invalid input. Please enter a day of the week."
)

// GetFilters asks the user for a city, a month and a day of the week. Invalid answers are asked again.
// + cities: valid city keys, lowercase
// + separatorWidth: width of the line printed once every filter is chosen
func (p *Prompter) GetFilters(cities []string, separatorWidth int) (selection.Selection, error) {
	fmt.Fprintln(p.writer, greeting)

	sortedCities := make([]string, len(cities))
	copy(sortedCities, cities)
	sort.Strings(sortedCities)

	city, err := p.Ask(cityQuestion(sortedCities), func(answer string) bool {
		return utils.ContainsString(answer, sortedCities)
	}, invalidCityMessage)
	if err != nil {
		return selection.Selection{}, err
	}

	month, err := p.Ask(monthQuestion, selection.IsValidMonth, invalidMonthMessage)
	if err != nil {
		return selection.Selection{}, err
	}

	day, err := p.Ask(dayQuestion, selection.IsValidDay, invalidDayMessage)
	if err != nil {
		return selection.Selection{}, err
	}

	fmt.Fprintln(p.writer, ui.Separator(separatorWidth))
	return selection.NewSelection(city, month, day), nil
}

// cityQuestion e.g. "Please enter a city (Chicago, New York City, Washington): "
func cityQuestion(cities []string) string {
	names := make([]string, 0, len(cities))
	for _, city := range cities {
		names = append(names, utils.TitleCase(city))
	}
	return fmt.Sprintf("Please enter a city (%s): ", strings.Join(names, ", "))
}

package prompt

import (
	"bikeshare/domain/entities/selection"
	explorerErrors "bikeshare/domain/errors"
	"bytes"
	"errors"
	"strings"
	"testing"
)

var cities = []string{"washington", "chicago", "new york city"}

func TestGetFilters(t *testing.T) {
	var out bytes.Buffer
	input := "Boston\nNew York City\njan\nJanuary\nfunday\n Sunday\n"
	prompter := NewPrompter(strings.NewReader(input), &out)

	sel, err := prompter.GetFilters(cities, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := selection.NewSelection("new york city", "january", "sunday")
	if sel != expected {
		t.Errorf("expected %+v, got %+v", expected, sel)
	}

	output := out.String()
	for _, message := range []string{
		greeting,
		"Please enter a city (Chicago, New York City, Washington): ",
		invalidCityMessage,
		invalidMonthMessage,
		invalidDayMessage,
		strings.Repeat("-", 40),
	} {
		if !strings.Contains(output, message) {
			t.Errorf("output should contain %q:\n%s", message, output)
		}
	}
}

func TestGetFiltersAcceptsAll(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("washington\nALL\nall\n"), &bytes.Buffer{})

	sel, err := prompter.GetFilters(cities, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.FiltersMonth() || sel.FiltersDay() {
		t.Errorf("expected no filters, got %+v", sel)
	}
}

func TestGetFiltersInputExhausted(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("chicago\nmarch\n"), &bytes.Buffer{})

	if _, err := prompter.GetFilters(cities, 40); !errors.Is(err, explorerErrors.ErrInputExhausted) {
		t.Errorf("expected ErrInputExhausted, got %v", err)
	}
}

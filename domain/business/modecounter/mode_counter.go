package modecounter

import (
	"cmp"
	"sort"
)

// ModeCounter counts how many times each value of a column appears
// + counters: amount of appearances per value
// + total: amount of values counted
type ModeCounter[T cmp.Ordered] struct {
	counters map[T]int
	total    int
}

// ValueCount amount of appearances of a single value
type ValueCount[T cmp.Ordered] struct {
	Value T
	Count int
}

func NewModeCounter[T cmp.Ordered]() *ModeCounter[T] {
	return &ModeCounter[T]{
		counters: make(map[T]int),
	}
}

// NewModeCounterWithData returns a ModeCounter that already counted values
func NewModeCounterWithData[T cmp.Ordered](values []T) *ModeCounter[T] {
	modeCounter := NewModeCounter[T]()
	for idx := range values {
		modeCounter.UpdateCounter(values[idx])
	}
	return modeCounter
}

func (mc *ModeCounter[T]) UpdateCounter(value T) {
	mc.counters[value] += 1
	mc.total += 1
}

func (mc *ModeCounter[T]) IsEmpty() bool {
	return mc.total == 0
}

// GetMode returns the most frequent value. On ties the smallest value wins.
// Returns the zero value of T when the counter IsEmpty.
func (mc *ModeCounter[T]) GetMode() T {
	var mode T
	maxCounter := 0
	for value, counter := range mc.counters {
		if counter > maxCounter || (counter == maxCounter && value < mode) {
			mode = value
			maxCounter = counter
		}
	}
	return mode
}

// GetValueCounts returns every value with its counter, most frequent first.
// Values with the same counter are sorted ascending.
func (mc *ModeCounter[T]) GetValueCounts() []ValueCount[T] {
	valueCounts := make([]ValueCount[T], 0, len(mc.counters))
	for value, counter := range mc.counters {
		valueCounts = append(valueCounts, ValueCount[T]{Value: value, Count: counter})
	}

	sort.Slice(valueCounts, func(i, j int) bool {
		if valueCounts[i].Count != valueCounts[j].Count {
			return valueCounts[i].Count > valueCounts[j].Count
		}
		return valueCounts[i].Value < valueCounts[j].Value
	})
	return valueCounts
}

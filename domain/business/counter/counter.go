package counter

import (
	"cmp"
	"sort"
)

// ValueCount amount of times Value was seen by a Counter
type ValueCount[K cmp.Ordered] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// Counter struct that counts how many times each value appears
// + counters: amount of appearances of each value
// + total: amount of values counted
type Counter[K cmp.Ordered] struct {
	counters map[K]int
	total    int
}

func NewCounter[K cmp.Ordered]() *Counter[K] {
	return &Counter[K]{
		counters: make(map[K]int),
	}
}

// UpdateCounter adds one appearance of value
func (c *Counter[K]) UpdateCounter(value K) {
	c.counters[value] += 1
	c.total += 1
}

// GetCounter returns the amount of appearances of value
func (c *Counter[K]) GetCounter(value K) int {
	return c.counters[value]
}

// GetTotal returns the amount of values counted
func (c *Counter[K]) GetTotal() int {
	return c.total
}

// Merge returns a new Counter with the appearances of both counters
func (c *Counter[K]) Merge(counter2 *Counter[K]) *Counter[K] {
	merged := NewCounter[K]()
	for value, count := range c.counters {
		merged.counters[value] += count
	}
	for value, count := range counter2.counters {
		merged.counters[value] += count
	}
	merged.total = c.total + counter2.total
	return merged
}

// Mode returns the most frequent value. Ties are broken by the smallest value.
// If nothing was counted ok is false
func (c *Counter[K]) Mode() (mode K, ok bool) {
	bestCount := 0
	for value, count := range c.counters {
		if count > bestCount || (count == bestCount && value < mode) {
			mode = value
			bestCount = count
		}
	}
	return mode, bestCount > 0
}

// Min returns the smallest value counted. If nothing was counted ok is false
func (c *Counter[K]) Min() (minValue K, ok bool) {
	for value := range c.counters {
		if !ok || value < minValue {
			minValue = value
			ok = true
		}
	}
	return minValue, ok
}

// Max returns the biggest value counted. If nothing was counted ok is false
func (c *Counter[K]) Max() (maxValue K, ok bool) {
	for value := range c.counters {
		if !ok || value > maxValue {
			maxValue = value
			ok = true
		}
	}
	return maxValue, ok
}

// ValueCounts returns every value with its amount of appearances sorted by count in descending order.
// Values with the same count are sorted in ascending order
func (c *Counter[K]) ValueCounts() []ValueCount[K] {
	valueCounts := make([]ValueCount[K], 0, len(c.counters))
	for value, count := range c.counters {
		valueCounts = append(valueCounts, ValueCount[K]{Value: value, Count: count})
	}

	sort.Slice(valueCounts, func(i, j int) bool {
		if valueCounts[i].Count != valueCounts[j].Count {
			return valueCounts[i].Count > valueCounts[j].Count
		}
		return valueCounts[i].Value < valueCounts[j].Value
	})

	return valueCounts
}

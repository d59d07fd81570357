package durationaccumulator

// DurationAccumulator struct that collects data about the duration of trips
// + Counter: counts the amount of data collected
// + TotalDuration: sum of durations of trips, in seconds
type DurationAccumulator struct {
	Counter       int   `json:"counter"`
	TotalDuration int64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration int64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) Merge(durationAccumulator2 *DurationAccumulator) *DurationAccumulator {
	return &DurationAccumulator{
		Counter:       da.Counter + durationAccumulator2.Counter,
		TotalDuration: da.TotalDuration + durationAccumulator2.TotalDuration,
	}
}

// GetAverageDuration returns the mean duration of the trips collected. If no trip was
// collected there is no average and ok is false
func (da *DurationAccumulator) GetAverageDuration() (average float64, ok bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return float64(da.TotalDuration) / float64(da.Counter), true
}

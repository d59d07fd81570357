package report

import (
	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities"
	"time"
)

const summaryType = "summary"

// TimeReport most frequent times of travel. A nil field means there was no data to compute it
// + MostCommonMonth: 1 (January) to 12 (December)
// + MostCommonWeekday: 0 (Monday) to 6 (Sunday)
// + MostCommonHour: 0 to 23
type TimeReport struct {
	MostCommonMonth   *int          `json:"most_common_month,omitempty"`
	MostCommonWeekday *int          `json:"most_common_weekday,omitempty"`
	MostCommonHour    *int          `json:"most_common_hour,omitempty"`
	Elapsed           time.Duration `json:"-"`
}

// StationReport most popular stations and trip. A nil field means there was no data to compute it.
// MostCommonTripKm is only set when both stations of the most common trip have known coordinates
type StationReport struct {
	MostCommonStartStation *string       `json:"most_common_start_station,omitempty"`
	MostCommonEndStation   *string       `json:"most_common_end_station,omitempty"`
	MostCommonTrip         *string       `json:"most_common_trip,omitempty"`
	MostCommonTripKm       *float64      `json:"most_common_trip_km,omitempty"`
	Elapsed                time.Duration `json:"-"`
}

// DurationReport total and average trip duration, in seconds. MeanDuration is nil when there are no trips
type DurationReport struct {
	Trips         int           `json:"trips"`
	TotalDuration int64         `json:"total_duration"`
	MeanDuration  *float64      `json:"mean_duration,omitempty"`
	Elapsed       time.Duration `json:"-"`
}

// BirthYearReport birth year statistics. A nil field means that no trip had a birth year
type BirthYearReport struct {
	Earliest   *int `json:"earliest,omitempty"`
	MostRecent *int `json:"most_recent,omitempty"`
	MostCommon *int `json:"most_common,omitempty"`
}

// UserReport statistics about the users.
// Genders and BirthYears are nil when the city does not provide those columns
type UserReport struct {
	UserTypes  []counter.ValueCount[string] `json:"user_types"`
	Genders    []counter.ValueCount[string] `json:"genders,omitempty"`
	BirthYears *BirthYearReport             `json:"birth_years,omitempty"`
	Elapsed    time.Duration                `json:"-"`
}

// Summary contains every report of an analysis run
type Summary struct {
	Metadata entities.Metadata `json:"metadata"`
	Month    int               `json:"month"`
	Weekday  int               `json:"weekday"`
	Records  int               `json:"records"`
	Time     TimeReport        `json:"time"`
	Stations StationReport     `json:"stations"`
	Duration DurationReport    `json:"duration"`
	Users    UserReport        `json:"users"`
}

func NewSummary(runID string, city string, month int, weekday int, records int) *Summary {
	return &Summary{
		Metadata: entities.NewMetadata(runID, city, summaryType),
		Month:    month,
		Weekday:  weekday,
		Records:  records,
	}
}

func (s *Summary) GetMetadata() entities.Metadata {
	return s.Metadata
}

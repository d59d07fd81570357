package dataset

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
	"fmt"
	"strings"
	"time"
)

var (
	// Months that can be analyzed. The datasets cover the first half of the year
	Months = []string{"january", "february", "march", "april", "may", "june"}
	// Weekdays names, indexed from Monday=0 to Sunday=6
	Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Filters selection of data to analyze
// + City: one of the known cities, lowercase
// + Month: 1 (January) to 6 (June)
// + Weekday: 0 (Monday) to 6 (Sunday)
type Filters struct {
	City    string
	Month   int
	Weekday int
}

// Validate checks that Month and Weekday are in range
func (f Filters) Validate() error {
	if f.Month < 1 || f.Month > len(Months) {
		return fmt.Errorf("%w: %v, expected a value between 1 and %v", ErrInvalidMonth, f.Month, len(Months))
	}
	if f.Weekday < 0 || f.Weekday >= len(Weekdays) {
		return fmt.Errorf("%w: %v, expected a value between 0 and %v", ErrInvalidWeekday, f.Weekday, len(Weekdays)-1)
	}
	return nil
}

// Dataset ordered trips of a city
// + City: city which belongs the data
// + Records: trips in the order they appear in the source
// + HasGender: true if the source provides the gender column
// + HasBirthYear: true if the source provides the birth year column
type Dataset struct {
	City         string
	Records      []*trip.TripRecord
	HasGender    bool
	HasBirthYear bool
}

// Len returns the amount of trips in the dataset
func (ds *Dataset) Len() int {
	return len(ds.Records)
}

// Filter returns a new Dataset with the trips that begin in month and weekday.
// The records are shared with ds and keep their order
func (ds *Dataset) Filter(month int, weekday int) *Dataset {
	var filtered []*trip.TripRecord
	for _, record := range ds.Records {
		if record.GetMonth() == month && record.GetWeekday() == weekday {
			filtered = append(filtered, record)
		}
	}

	return &Dataset{
		City:         ds.City,
		Records:      filtered,
		HasGender:    ds.HasGender,
		HasBirthYear: ds.HasBirthYear,
	}
}

// Page returns the records in [offset, offset+size) clamped to the size of the dataset
func (ds *Dataset) Page(offset int, size int) []*trip.TripRecord {
	if offset >= len(ds.Records) || offset < 0 {
		return nil
	}
	last := min(offset+size, len(ds.Records))
	return ds.Records[offset:last]
}

// ParseMonth returns the number of a month name from Months, 1 for January.
func ParseMonth(monthName string) (int, error) {
	idx := utils.IndexOfString(monthName, Months)
	if idx == -1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, monthName)
	}
	return idx + 1, nil
}

// MonthName returns the lowercase name of a month from 1 to 12
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("month %v", month)
	}
	return strings.ToLower(time.Month(month).String())
}

// WeekdayName returns the lowercase name of a weekday from 0 (Monday) to 6 (Sunday)
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday >= len(Weekdays) {
		return fmt.Sprintf("weekday %v", weekday)
	}
	return Weekdays[weekday]
}

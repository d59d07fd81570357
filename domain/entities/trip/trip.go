package trip

import (
	"time"
)

// TripRecord struct that contains one bicycle rental.
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends. Nil if the source does not have it
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: type of user, e.g. Subscriber or Customer
// + Gender: gender of the user. Nil if the source or the row does not have it
// + BirthYear: birth year of the user. Nil if the source or the row does not have it
//
// Month, weekday and hour are derived from StartTime when the record is built and cannot change.
type TripRecord struct {
	StartTime    time.Time
	EndTime      *time.Time
	StartStation string
	EndStation   string
	Duration     int64
	UserType     string
	Gender       *string
	BirthYear    *int

	month   int
	weekday int
	hour    int
}

func NewTripRecord(startTime time.Time, startStation string, endStation string, duration int64, userType string) *TripRecord {
	return &TripRecord{
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		month:        int(startTime.Month()),
		weekday:      WeekdayIndex(startTime),
		hour:         startTime.Hour(),
	}
}

// GetMonth returns the month in which the trip begins, 1 (January) to 12 (December)
func (tr *TripRecord) GetMonth() int {
	return tr.month
}

// GetWeekday returns the day of the week in which the trip begins, 0 (Monday) to 6 (Sunday)
func (tr *TripRecord) GetWeekday() int {
	return tr.weekday
}

// GetHour returns the hour of the day in which the trip begins, 0 to 23
func (tr *TripRecord) GetHour() int {
	return tr.hour
}

// GetCombinedStations returns the key used to group trips by their pair of stations
func (tr *TripRecord) GetCombinedStations() string {
	return CombineStations(tr.StartStation, tr.EndStation)
}

// CombineStations joins two station names with the format "<start station> and <end station>"
func CombineStations(startStation string, endStation string) string {
	return startStation + " and " + endStation
}

// WeekdayIndex returns the day of the week of t counting from Monday=0 to Sunday=6
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

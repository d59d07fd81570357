// Package stats computes the descriptive reports of a filtered dataset. Every function is
// read-only and independent from the others.
package stats

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/counter"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/report"
	"github.com/umahmood/haversine"
	"time"
)

// TimeStats returns the most frequent month, weekday and hour in which trips begin
func TimeStats(ds *dataset.Dataset) report.TimeReport {
	start := time.Now()

	months := counter.NewCounter[int]()
	weekdays := counter.NewCounter[int]()
	hours := counter.NewCounter[int]()
	for _, record := range ds.Records {
		months.UpdateCounter(record.GetMonth())
		weekdays.UpdateCounter(record.GetWeekday())
		hours.UpdateCounter(record.GetHour())
	}

	return report.TimeReport{
		MostCommonMonth:   modeOf(months),
		MostCommonWeekday: modeOf(weekdays),
		MostCommonHour:    modeOf(hours),
		Elapsed:           time.Since(start),
	}
}

// StationStats returns the most popular start station, end station and trip. If both stations
// of the most popular trip are in catalog, the distance between them is reported as well
func StationStats(ds *dataset.Dataset, catalog dataset.StationCatalog) report.StationReport {
	start := time.Now()

	startStations := counter.NewCounter[string]()
	endStations := counter.NewCounter[string]()
	trips := counter.NewCounter[string]()
	tripStations := make(map[string][2]string)
	for _, record := range ds.Records {
		if record.StartStation != "" {
			startStations.UpdateCounter(record.StartStation)
		}
		if record.EndStation != "" {
			endStations.UpdateCounter(record.EndStation)
		}
		if record.StartStation != "" && record.EndStation != "" {
			combined := record.GetCombinedStations()
			trips.UpdateCounter(combined)
			tripStations[combined] = [2]string{record.StartStation, record.EndStation}
		}
	}

	stationReport := report.StationReport{
		MostCommonStartStation: modeOf(startStations),
		MostCommonEndStation:   modeOf(endStations),
		MostCommonTrip:         modeOf(trips),
	}

	if stationReport.MostCommonTrip != nil {
		stations := tripStations[*stationReport.MostCommonTrip]
		if km, ok := distanceKm(catalog, stations[0], stations[1]); ok {
			stationReport.MostCommonTripKm = &km
		}
	}

	stationReport.Elapsed = time.Since(start)
	return stationReport
}

// TripDurationStats returns the total and the mean duration of the trips. The mean is nil
// when the dataset is empty
func TripDurationStats(ds *dataset.Dataset) report.DurationReport {
	start := time.Now()

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, record := range ds.Records {
		accumulator.UpdateAccumulator(record.Duration)
	}

	durationReport := report.DurationReport{
		Trips:         accumulator.Counter,
		TotalDuration: accumulator.TotalDuration,
	}
	if average, ok := accumulator.GetAverageDuration(); ok {
		durationReport.MeanDuration = &average
	}

	durationReport.Elapsed = time.Since(start)
	return durationReport
}

// UserStats returns the amount of trips by user type and, when the source provides them,
// by gender and the birth year statistics
func UserStats(ds *dataset.Dataset) report.UserReport {
	start := time.Now()

	userTypes := counter.NewCounter[string]()
	genders := counter.NewCounter[string]()
	birthYears := counter.NewCounter[int]()
	for _, record := range ds.Records {
		if record.UserType != "" {
			userTypes.UpdateCounter(record.UserType)
		}
		if record.Gender != nil {
			genders.UpdateCounter(*record.Gender)
		}
		if record.BirthYear != nil {
			birthYears.UpdateCounter(*record.BirthYear)
		}
	}

	userReport := report.UserReport{
		UserTypes: userTypes.ValueCounts(),
	}

	if ds.HasGender {
		userReport.Genders = genders.ValueCounts()
	}

	if ds.HasBirthYear {
		birthYearReport := &report.BirthYearReport{MostCommon: modeOf(birthYears)}
		if earliest, ok := birthYears.Min(); ok {
			birthYearReport.Earliest = &earliest
		}
		if mostRecent, ok := birthYears.Max(); ok {
			birthYearReport.MostRecent = &mostRecent
		}
		userReport.BirthYears = birthYearReport
	}

	userReport.Elapsed = time.Since(start)
	return userReport
}

func modeOf[K int | string](c *counter.Counter[K]) *K {
	mode, ok := c.Mode()
	if !ok {
		return nil
	}
	return &mode
}

// distanceKm returns the great-circle distance between two stations of the catalog
func distanceKm(catalog dataset.StationCatalog, startStation string, endStation string) (float64, bool) {
	startStationData, ok := catalog.Get(startStation)
	if !ok {
		return 0, false
	}
	endStationData, ok := catalog.Get(endStation)
	if !ok {
		return 0, false
	}

	latStartStation, longStartStation := startStationData.GetCoordinates()
	latEndStation, longEndStation := endStationData.GetCoordinates()
	station1 := haversine.Coord{Lat: latStartStation, Lon: longStartStation}
	station2 := haversine.Coord{Lat: latEndStation, Lon: longEndStation}

	_, km := haversine.Distance(station1, station2)
	return km, true
}

package main

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/counter"
	"bikeshare/domain/business/report"
	"bikeshare/utils"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	noData          = "not available: no data"
	separatorLength = 40
)

func printHeader(out io.Writer, filters dataset.Filters, trips int) {
	fmt.Fprintf(out, "\nAnalysing %s trips started on %ss of %s: %v trips found\n",
		utils.DisplayName(filters.City),
		utils.DisplayName(dataset.WeekdayName(filters.Weekday)),
		utils.DisplayName(dataset.MonthName(filters.Month)),
		trips,
	)
}

func printTimeReport(out io.Writer, timeReport report.TimeReport) {
	fmt.Fprint(out, "\nCalculating The Most Frequent Times of Travel...\n\n")

	fmt.Fprintf(out, "The most common month is %s\n", formatOptional(timeReport.MostCommonMonth, func(month int) string {
		return utils.DisplayName(dataset.MonthName(month))
	}))
	fmt.Fprintf(out, "The most common day is %s\n", formatOptional(timeReport.MostCommonWeekday, func(weekday int) string {
		return utils.DisplayName(dataset.WeekdayName(weekday))
	}))
	fmt.Fprintf(out, "The most common hour is %s\n", formatOptional(timeReport.MostCommonHour, func(hour int) string {
		return fmt.Sprint(hour)
	}))

	printFooter(out, timeReport.Elapsed)
}

func printStationReport(out io.Writer, stationReport report.StationReport) {
	fmt.Fprint(out, "\nCalculating The Most Popular Stations and Trip...\n\n")

	fmt.Fprintf(out, "Most commonly used start station is %s\n", formatOptional(stationReport.MostCommonStartStation, identity))
	fmt.Fprintf(out, "Most commonly used end station is %s\n", formatOptional(stationReport.MostCommonEndStation, identity))
	fmt.Fprintf(out, "Most frequent combination of start and end station is %s\n", formatOptional(stationReport.MostCommonTrip, identity))
	if stationReport.MostCommonTripKm != nil {
		fmt.Fprintf(out, "The stations of the most frequent trip are %.2f km apart\n", *stationReport.MostCommonTripKm)
	}

	printFooter(out, stationReport.Elapsed)
}

func printDurationReport(out io.Writer, durationReport report.DurationReport) {
	fmt.Fprint(out, "\nCalculating Trip Duration...\n\n")

	fmt.Fprintf(out, "Total travel time is %v seconds\n", durationReport.TotalDuration)
	fmt.Fprintf(out, "Mean travel time is %s\n", formatOptional(durationReport.MeanDuration, func(mean float64) string {
		return fmt.Sprintf("%.2f seconds", mean)
	}))

	printFooter(out, durationReport.Elapsed)
}

func printUserReport(out io.Writer, userReport report.UserReport) {
	fmt.Fprint(out, "\nCalculating User Stats...\n\n")

	printValueCounts(out, "User Type", userReport.UserTypes)

	if userReport.Genders != nil {
		fmt.Fprintln(out)
		printValueCounts(out, "Gender", userReport.Genders)
	}

	if userReport.BirthYears != nil {
		formatYear := func(year int) string { return fmt.Sprint(year) }
		fmt.Fprintln(out)
		fmt.Fprintf(out, "The earliest birth year is %s\n", formatOptional(userReport.BirthYears.Earliest, formatYear))
		fmt.Fprintf(out, "The most recent birth year is %s\n", formatOptional(userReport.BirthYears.MostRecent, formatYear))
		fmt.Fprintf(out, "The most common birth year is %s\n", formatOptional(userReport.BirthYears.MostCommon, formatYear))
	}

	printFooter(out, userReport.Elapsed)
}

func printValueCounts(out io.Writer, title string, valueCounts []counter.ValueCount[string]) {
	fmt.Fprintf(out, "Trips by %s:\n", strings.ToLower(title))
	if len(valueCounts) == 0 {
		fmt.Fprintf(out, "  %s\n", noData)
		return
	}

	for _, valueCount := range valueCounts {
		fmt.Fprintf(out, "  %s: %v\n", valueCount.Value, valueCount.Count)
	}
}

func printFooter(out io.Writer, elapsed time.Duration) {
	fmt.Fprintf(out, "\nThis took %v seconds.\n", elapsed.Seconds())
	fmt.Fprintln(out, strings.Repeat("-", separatorLength))
}

func formatOptional[T any](value *T, format func(T) string) string {
	if value == nil {
		return noData
	}
	return format(*value)
}

func identity(s string) string {
	return s
}

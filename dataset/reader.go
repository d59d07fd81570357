package dataset

import (
	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	"encoding/csv"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

const notFound = -1

// tripColumns contains the index of each field to analyze. Optional fields are notFound
// when the source does not have them
type tripColumns struct {
	startTime    int
	endTime      int
	startStation int
	endStation   int
	tripDuration int
	userType     int
	gender       int
	birthYear    int
}

// TripReader parses trips from CSV sources with a header row
type TripReader struct {
	columns    config.ColumnsConfig
	dateLayout string
}

func NewTripReader(columns config.ColumnsConfig, dateLayout string) *TripReader {
	return &TripReader{
		columns:    columns,
		dateLayout: dateLayout,
	}
}

// ReadTrips parses every trip of reader. Source is only used in errors and logs.
// Any malformed row aborts the whole read
func (tr *TripReader) ReadTrips(reader io.Reader, source string, city string) (*Dataset, error) {
	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Source: source, Err: errors.New("empty file")}
		}
		return nil, newReadError(source, err)
	}

	columns, err := tr.getColumns(header)
	if err != nil {
		return nil, &ParseError{Source: source, Line: 1, Err: err}
	}

	ds := &Dataset{
		City:         city,
		HasGender:    columns.gender != notFound,
		HasBirthYear: columns.birthYear != notFound,
	}

	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newReadError(source, err)
		}

		line, _ := csvReader.FieldPos(0)
		record, column, err := tr.getTripRecord(row, columns)
		if err != nil {
			return nil, &ParseError{Source: source, Line: line, Column: column, Err: err}
		}
		ds.Records = append(ds.Records, record)
	}

	log.Debugf("[method: ReadTrips][source: %s][status: OK] %v trips read", source, len(ds.Records))
	return ds, nil
}

func (tr *TripReader) getColumns(header []string) (tripColumns, error) {
	indexes := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		indexes[name] = idx
	}

	required := func(name string) (int, error) {
		idx, ok := indexes[name]
		if !ok {
			return notFound, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return idx, nil
	}
	optional := func(name string) int {
		idx, ok := indexes[name]
		if !ok {
			return notFound
		}
		return idx
	}

	var columns tripColumns
	var err error
	if columns.startTime, err = required(tr.columns.StartTime); err != nil {
		return columns, err
	}
	if columns.startStation, err = required(tr.columns.StartStation); err != nil {
		return columns, err
	}
	if columns.endStation, err = required(tr.columns.EndStation); err != nil {
		return columns, err
	}
	if columns.tripDuration, err = required(tr.columns.TripDuration); err != nil {
		return columns, err
	}
	if columns.userType, err = required(tr.columns.UserType); err != nil {
		return columns, err
	}
	columns.endTime = optional(tr.columns.EndTime)
	columns.gender = optional(tr.columns.Gender)
	columns.birthYear = optional(tr.columns.BirthYear)

	return columns, nil
}

// getTripRecord builds a trip from a CSV row. When the row is malformed the name of the
// offending column is returned along with the error
func (tr *TripReader) getTripRecord(row []string, columns tripColumns) (*trip.TripRecord, string, error) {
	startTimeStr := strings.TrimSpace(row[columns.startTime])
	startTime, err := time.Parse(tr.dateLayout, startTimeStr)
	if err != nil {
		return nil, tr.columns.StartTime, fmt.Errorf("%w: %q", ErrInvalidDate, startTimeStr)
	}

	durationStr := strings.TrimSpace(row[columns.tripDuration])
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil || duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, tr.columns.TripDuration, fmt.Errorf("%w: %q", ErrInvalidDuration, durationStr)
	}

	record := trip.NewTripRecord(
		startTime,
		row[columns.startStation],
		row[columns.endStation],
		int64(math.Round(duration)),
		strings.TrimSpace(row[columns.userType]),
	)

	if columns.endTime != notFound {
		endTimeStr := strings.TrimSpace(row[columns.endTime])
		endTime, err := time.Parse(tr.dateLayout, endTimeStr)
		if err == nil {
			record.EndTime = &endTime
		} else if endTimeStr != "" {
			log.Debugf("[method: getTripRecord] ignoring invalid end time %q", endTimeStr)
		}
	}

	if columns.gender != notFound {
		gender := strings.TrimSpace(row[columns.gender])
		if gender != "" {
			record.Gender = &gender
		}
	}

	if columns.birthYear != notFound {
		birthYearStr := strings.TrimSpace(row[columns.birthYear])
		if birthYearStr != "" {
			// some sources store the year as a float, e.g. 1989.0
			birthYear, err := strconv.ParseFloat(birthYearStr, 64)
			if err != nil || birthYear != math.Trunc(birthYear) {
				return nil, tr.columns.BirthYear, fmt.Errorf("%w: %q", ErrInvalidBirthYear, birthYearStr)
			}
			year := int(birthYear)
			record.BirthYear = &year
		}
	}

	return record, "", nil
}

package dataset

import (
	"bikeshare/domain/entities/station"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	stationNameColumn = iota
	stationLatitudeColumn
	stationLongitudeColumn
	stationColumns
)

// StationCatalog stations of a city indexed by name
type StationCatalog map[string]station.StationData

// Get returns the station with the given name
func (sc StationCatalog) Get(name string) (station.StationData, bool) {
	stationData, ok := sc[name]
	return stationData, ok
}

// ReadStations parses a CSV with the columns name,latitude,longitude. The first row is the header.
// If a station name appears twice the last row wins
func ReadStations(reader io.Reader, source string, city string) (StationCatalog, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = stationColumns

	_, err := csvReader.Read() // Dismiss header
	if err != nil {
		if errors.Is(err, io.EOF) {
			return StationCatalog{}, nil
		}
		return nil, newReadError(source, err)
	}

	catalog := make(StationCatalog)
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newReadError(source, err)
		}

		line, _ := csvReader.FieldPos(0)
		latitude, err := strconv.ParseFloat(strings.TrimSpace(row[stationLatitudeColumn]), 64)
		if err != nil || latitude < -90 || latitude > 90 {
			return nil, &ParseError{Source: source, Line: line, Column: "latitude", Err: fmt.Errorf("%w: latitude %q", ErrInvalidStation, row[stationLatitudeColumn])}
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(row[stationLongitudeColumn]), 64)
		if err != nil || longitude < -180 || longitude > 180 {
			return nil, &ParseError{Source: source, Line: line, Column: "longitude", Err: fmt.Errorf("%w: longitude %q", ErrInvalidStation, row[stationLongitudeColumn])}
		}

		name := row[stationNameColumn]
		catalog[name] = station.StationData{
			City:      city,
			Name:      name,
			Latitude:  latitude,
			Longitude: longitude,
		}
	}

	return catalog, nil
}

package dataset

import (
	"bikeshare/config"
	"bikeshare/utils"
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strings"
)

// Loader resolves cities to their source files and loads them
type Loader struct {
	config     *config.ExplorerConfig
	tripReader *TripReader
}

func NewLoader(explorerConfig *config.ExplorerConfig) *Loader {
	return &Loader{
		config:     explorerConfig,
		tripReader: NewTripReader(explorerConfig.Columns, explorerConfig.DateLayout),
	}
}

// Cities returns the cities that can be loaded
func (l *Loader) Cities() []string {
	return l.config.Cities()
}

// GetFilePath returns the path to the .csv file of city.
// + City possible values: chicago, new york city or washington
func (l *Loader) GetFilePath(city string) (string, error) {
	city = utils.NormalizeString(city)
	filename, ok := l.config.CityFiles[city]
	if !ok || !utils.ContainsString(city, l.Cities()) {
		return "", fmt.Errorf("%w: %q, valid cities are %s", ErrUnknownCity, city, strings.Join(l.Cities(), ", "))
	}
	return filepath.Join(l.config.DataDir, filename), nil
}

// LoadAll parses every trip of city without filtering
func (l *Loader) LoadAll(city string) (*Dataset, error) {
	filePath, err := l.GetFilePath(city)
	if err != nil {
		return nil, err
	}

	dataFile, err := os.Open(filePath)
	if err != nil {
		log.Debugf("[method: LoadAll][city: %s] error opening %s: %s", city, filePath, err.Error())
		return nil, &ParseError{Source: filePath, Err: err}
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", filePath, err.Error())
		}
	}(dataFile)

	return l.tripReader.ReadTrips(dataFile, filePath, utils.NormalizeString(city))
}

// Load parses the trips of filters.City and keeps only the ones that begin in
// filters.Month and filters.Weekday. An empty dataset is not an error
func (l *Loader) Load(filters Filters) (*Dataset, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	ds, err := l.LoadAll(filters.City)
	if err != nil {
		return nil, err
	}

	filtered := ds.Filter(filters.Month, filters.Weekday)
	log.Infof("[method: Load][city: %s][month: %v][weekday: %v][status: OK] %v of %v trips match the filters",
		filtered.City, filters.Month, filters.Weekday, filtered.Len(), ds.Len())
	return filtered, nil
}

// LoadStations returns the station catalogue of city. If the city has no catalogue configured
// an empty one is returned
func (l *Loader) LoadStations(city string) (StationCatalog, error) {
	city = utils.NormalizeString(city)
	filename, ok := l.config.StationFiles[city]
	if !ok {
		return StationCatalog{}, nil
	}

	filePath := filepath.Join(l.config.DataDir, filename)
	stationsFile, err := os.Open(filePath)
	if err != nil {
		return nil, &ParseError{Source: filePath, Err: err}
	}
	defer stationsFile.Close()

	catalog, err := ReadStations(stationsFile, filePath, city)
	if err != nil {
		return nil, err
	}

	log.Debugf("[method: LoadStations][city: %s][status: OK] %v stations loaded", city, len(catalog))
	return catalog, nil
}

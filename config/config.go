package config

import (
	"bikeshare/communication"
	"bikeshare/utils"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

const (
	defaultConfigFilepath = "./config/config.yaml"
	configPathEnvVarName  = "BIKESHARE_CONFIG"
	logLevelEnvVarName    = "LOG_LEVEL"
	dataDirEnvVarName     = "BIKESHARE_DATA_DIR"
	defaultPageSize       = 5
	defaultDateLayout     = "2006-01-02 15:04:05"
)

var (
	ErrInvalidConfig = errors.New("invalid config")

	defaultCityFiles = map[string]string{
		"chicago":       "chicago.csv",
		"new york city": "new_york_city.csv",
		"washington":    "washington.csv",
	}
)

// ColumnsConfig contains the header name of each field to analyze
type ColumnsConfig struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	TripDuration string `yaml:"trip_duration"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// PublisherConfig contains the parameters to publish the summary of each run in RabbitMQ.
// The publisher is disabled by default
type PublisherConfig struct {
	Enabled     bool                                    `yaml:"enabled"`
	RabbitURL   string                                  `yaml:"rabbit_url"`
	Exchange    communication.ExchangeDeclarationConfig `yaml:"exchange"`
	RoutingKey  string                                  `yaml:"routing_key"`
	ContentType string                                  `yaml:"content_type"`
	TimeoutSecs int                                     `yaml:"timeout_secs"`
}

// ExplorerConfig is the configuration of the bikeshare explorer
// + LogLevel: logrus level. LOG_LEVEL env var overrides it
// + DataDir: directory with the city files. BIKESHARE_DATA_DIR env var overrides it
// + CityFiles: file name of each city inside DataDir
// + StationFiles: optional station catalogue of each city inside DataDir
// + PageSize: amount of raw rows shown per page
type ExplorerConfig struct {
	LogLevel     string            `yaml:"log_level"`
	DataDir      string            `yaml:"data_dir"`
	DateLayout   string            `yaml:"date_layout"`
	CityFiles    map[string]string `yaml:"cities"`
	StationFiles map[string]string `yaml:"stations"`
	Columns      ColumnsConfig     `yaml:"columns"`
	PageSize     int               `yaml:"page_size"`
	Publisher    PublisherConfig   `yaml:"publisher"`
}

// LoadConfig reads the config file pointed by BIKESHARE_CONFIG (./config/config.yaml by default),
// applies env overrides and defaults and validates the result
func LoadConfig() (*ExplorerConfig, error) {
	configFilepath := getEnv(configPathEnvVarName, defaultConfigFilepath)
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	return ParseConfig(configFile)
}

// ParseConfig builds an ExplorerConfig from the yaml content of a config file
func ParseConfig(configFile []byte) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	explorerConfig.LogLevel = getEnv(logLevelEnvVarName, explorerConfig.LogLevel)
	explorerConfig.DataDir = getEnv(dataDirEnvVarName, explorerConfig.DataDir)
	explorerConfig.setDefaults()

	if err := explorerConfig.validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

// Cities returns the name of the cities that can be analyzed, sorted alphabetically
func (ec *ExplorerConfig) Cities() []string {
	return []string{"chicago", "new york city", "washington"}
}

func (ec *ExplorerConfig) setDefaults() {
	if ec.LogLevel == "" {
		ec.LogLevel = "info"
	}
	if ec.DataDir == "" {
		ec.DataDir = "."
	}
	if ec.DateLayout == "" {
		ec.DateLayout = defaultDateLayout
	}
	if ec.PageSize == 0 {
		ec.PageSize = defaultPageSize
	}

	cityFiles := make(map[string]string, len(defaultCityFiles))
	for city, filename := range defaultCityFiles {
		cityFiles[city] = filename
	}
	for city, filename := range ec.CityFiles {
		cityFiles[utils.NormalizeString(city)] = filename
	}
	ec.CityFiles = cityFiles

	stationFiles := make(map[string]string, len(ec.StationFiles))
	for city, filename := range ec.StationFiles {
		stationFiles[utils.NormalizeString(city)] = filename
	}
	ec.StationFiles = stationFiles

	ec.Columns.setDefaults()

	if ec.Publisher.ContentType == "" {
		ec.Publisher.ContentType = "application/json"
	}
	if ec.Publisher.TimeoutSecs == 0 {
		ec.Publisher.TimeoutSecs = 5
	}
}

func (cc *ColumnsConfig) setDefaults() {
	setIfEmpty(&cc.StartTime, "Start Time")
	setIfEmpty(&cc.EndTime, "End Time")
	setIfEmpty(&cc.StartStation, "Start Station")
	setIfEmpty(&cc.EndStation, "End Station")
	setIfEmpty(&cc.TripDuration, "Trip Duration")
	setIfEmpty(&cc.UserType, "User Type")
	setIfEmpty(&cc.Gender, "Gender")
	setIfEmpty(&cc.BirthYear, "Birth Year")
}

func (ec *ExplorerConfig) validate() error {
	cities := ec.Cities()
	for city := range ec.CityFiles {
		if !utils.ContainsString(city, cities) {
			return fmt.Errorf("%w: unknown city %q, valid cities are %s", ErrInvalidConfig, city, strings.Join(cities, ", "))
		}
	}

	for city := range ec.StationFiles {
		if !utils.ContainsString(city, cities) {
			return fmt.Errorf("%w: unknown city %q in stations", ErrInvalidConfig, city)
		}
	}

	if ec.PageSize < 1 {
		return fmt.Errorf("%w: page_size must be greater than zero, got %v", ErrInvalidConfig, ec.PageSize)
	}

	if ec.Publisher.Enabled {
		if ec.Publisher.RabbitURL == "" {
			return fmt.Errorf("%w: publisher.rabbit_url is required when the publisher is enabled", ErrInvalidConfig)
		}
		if ec.Publisher.Exchange.Name == "" {
			return fmt.Errorf("%w: publisher.exchange.name is required when the publisher is enabled", ErrInvalidConfig)
		}
	}

	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setIfEmpty(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

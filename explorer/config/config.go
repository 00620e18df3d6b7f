package config

import (
	explorerErrors "bikeshare/domain/errors"
	"bikeshare/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"strings"
)

const DefaultConfigFilepath = "./explorer/config/config.yaml"

// ExplorerConfig config of the bikeshare explorer
// + LogLevel: level of the logger, overridden by the --log-level flag and the LOG_LEVEL env var
// + DataDir: directory where the city files are
// + PageSize: amount of raw rows shown per page
// + TimestampLayouts: layouts tried in order to parse the start time of a trip
// + StationSeparator: text between the start and end station in a trip combination
// + SeparatorWidth: width of the line printed between sections
// + Cities: city name to file name, relative to DataDir
type ExplorerConfig struct {
	LogLevel         string            `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	DataDir          string            `yaml:"data_dir" validate:"required"`
	PageSize         int               `yaml:"page_size" validate:"gt=0"`
	TimestampLayouts []string          `yaml:"timestamp_layouts" validate:"min=1,dive,required"`
	StationSeparator string            `yaml:"station_separator" validate:"required"`
	SeparatorWidth   int               `yaml:"separator_width" validate:"gte=0"`
	Cities           map[string]string `yaml:"cities" validate:"min=1,dive,keys,required,lowercase,endkeys,required"`
}

// Default returns the configuration used when there is no config file
func Default() *ExplorerConfig {
	return &ExplorerConfig{
		LogLevel:         "warn",
		DataDir:          ".",
		PageSize:         5,
		TimestampLayouts: []string{"2006-01-02 15:04:05", "2006-01-02 15:04:05.000"},
		StationSeparator: " - ",
		SeparatorWidth:   40,
		Cities: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
	}
}

// LoadConfig reads the config file located in filepath. Fields missing in the file keep their default value.
func LoadConfig(filepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(filepath)
	if err != nil {
		return nil, err
	}

	return ParseConfig(configFile)
}

// ParseConfig parses the yaml content of a config file on top of the default configuration and validates it
func ParseConfig(content []byte) (*ExplorerConfig, error) {
	explorerConfig := Default()
	explorerConfig.Cities = nil

	err := yaml.Unmarshal(content, explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s: %w", err.Error(), explorerErrors.ErrInvalidConfig)
	}

	if explorerConfig.Cities == nil {
		explorerConfig.Cities = Default().Cities
	}
	explorerConfig.LogLevel = strings.ToLower(explorerConfig.LogLevel)

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}

	return explorerConfig, nil
}

// Validate checks every field of the config
func (c *ExplorerConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("error validating explorer config: %s: %w", err.Error(), explorerErrors.ErrInvalidConfig)
	}
	return nil
}

// GetCityNames returns the names of the configured cities
func (c *ExplorerConfig) GetCityNames() []string {
	cities := make([]string, 0, len(c.Cities))
	for city := range c.Cities {
		cities = append(cities, city)
	}
	return cities
}

// Package config loads the YAML configuration of a signal run.
package config

import (
	"encoding/json"
	"os"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signal/internal/series"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/internal/version"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultLogLevel = "info"

// Config selects which strategies run and on which bars.
// Strategy parameters are fixed and cannot be configured.
type Config struct {
	Version    string                     `yaml:"version" json:"version,omitempty" jsonschema:"title=Version,description=Engine version or semver constraint this config targets"`
	Symbol     string                     `yaml:"symbol" json:"symbol,omitempty" jsonschema:"title=Symbol,description=Symbol to evaluate; empty uses the only symbol in the data"`
	Strategies []types.StrategyType       `yaml:"strategies" json:"strategies,omitempty" jsonschema:"title=Strategies,description=Strategies to run in order; empty runs all" validate:"unique,dive,strategy"`
	StartTime  optional.Option[time.Time] `yaml:"start_time" json:"start_time,omitempty" jsonschema:"title=Start Time,description=Optional inclusive lower bound on bar time"`
	EndTime    optional.Option[time.Time] `yaml:"end_time" json:"end_time,omitempty" jsonschema:"title=End Time,description=Optional inclusive upper bound on bar time"`
	MaxBars    int                        `yaml:"max_bars" json:"max_bars,omitempty" jsonschema:"title=Max Bars,description=Most recent bars kept per symbol,minimum=0" validate:"gte=0"`
	LogLevel   string                     `yaml:"log_level" json:"log_level,omitempty" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error" validate:"omitempty,oneof=debug info warn error"`
}

// UnmarshalYAML decodes the optional time bounds, which yaml cannot fill directly.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		Version    string               `yaml:"version"`
		Symbol     string               `yaml:"symbol"`
		Strategies []types.StrategyType `yaml:"strategies"`
		StartTime  *time.Time           `yaml:"start_time"`
		EndTime    *time.Time           `yaml:"end_time"`
		MaxBars    int                  `yaml:"max_bars"`
		LogLevel   string               `yaml:"log_level"`
	}

	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}

	c.Version = r.Version
	c.Symbol = r.Symbol
	c.Strategies = r.Strategies
	c.StartTime = optional.None[time.Time]()
	c.EndTime = optional.None[time.Time]()
	c.MaxBars = r.MaxBars
	c.LogLevel = r.LogLevel

	if r.StartTime != nil {
		c.StartTime = optional.Some(*r.StartTime)
	}

	if r.EndTime != nil {
		c.EndTime = optional.Some(*r.EndTime)
	}

	return nil
}

// Default returns a config that runs every strategy on the whole series.
func Default() Config {
	return Config{
		Version:    version.GetVersion(),
		Symbol:     "",
		Strategies: nil,
		StartTime:  optional.None[time.Time](),
		EndTime:    optional.None[time.Time](),
		MaxBars:    series.DefaultMaxBars,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads and validates the config at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML config. Missing fields take their defaults.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.MaxBars == 0 {
		c.MaxBars = series.DefaultMaxBars
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks field constraints, the time range and the version requirement.
func (c *Config) Validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		return types.StrategyType(fl.Field().String()).IsValid()
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeUnknown, "failed to register strategy validation", err)
	}

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if c.StartTime.IsSome() && c.EndTime.IsSome() && c.StartTime.Unwrap().After(c.EndTime.Unwrap()) {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "invalid config: start_time %s is after end_time %s",
			c.StartTime.Unwrap().Format(time.RFC3339), c.EndTime.Unwrap().Format(time.RFC3339))
	}

	return version.CheckConfigVersion(c.Version)
}

// SelectedStrategies returns the configured strategies, or every built-in one when none are listed.
func (c Config) SelectedStrategies() []types.StrategyType {
	if len(c.Strategies) == 0 {
		return types.AllStrategyTypes
	}

	return c.Strategies
}

// GenerateSchema generates a JSON schema for Config.
func (c *Config) GenerateSchema() *jsonschema.Schema {
	strategyType := reflect.TypeOf(types.StrategyType(""))

	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			switch t {
			case reflect.TypeOf(optional.Option[time.Time]{}):
				return &jsonschema.Schema{Type: "string", Format: "date-time"}
			case strategyType:
				enum := make([]any, len(types.AllStrategyTypes))
				for i, s := range types.AllStrategyTypes {
					enum[i] = string(s)
				}

				return &jsonschema.Schema{Type: "string", Enum: enum}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)
	schema.Title = "argo-signal-config"
	schema.Description = "Configuration schema for a signal evaluation run"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema
}

// GenerateSchemaJSON generates an indented JSON schema string for Config.
func (c *Config) GenerateSchemaJSON() (string, error) {
	schemaBytes, err := json.MarshalIndent(c.GenerateSchema(), "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnknown, "failed to marshal schema", err)
	}

	return string(schemaBytes), nil
}

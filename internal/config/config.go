package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	CSV     CSVConfig     `yaml:"csv" mapstructure:"csv"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Devices DevicesConfig `yaml:"devices" mapstructure:"devices"`
	IAB     IABConfig     `yaml:"iab" mapstructure:"iab"`
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// CSVConfig configures how source exports are read.
type CSVConfig struct {
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter" validate:"len=1"`
	Encoding  string `yaml:"encoding" mapstructure:"encoding" validate:"oneof=utf-8 latin-1"`
	Provider  string `yaml:"provider" mapstructure:"provider"`
	// Columns overrides resolved column indices per file, keyed by file
	// alias (categories, genders, device, unique) then semantic field.
	Columns map[string]map[string]int `yaml:"columns" mapstructure:"columns"`
}

// DelimiterByte returns the delimiter as a single byte. Valid after
// validation.
func (c CSVConfig) DelimiterByte() byte { return c.Delimiter[0] }

// ExtractConfig configures category tier extraction.
type ExtractConfig struct {
	Separator string `yaml:"separator" mapstructure:"separator" validate:"len=1"`
	Depth     int    `yaml:"depth" mapstructure:"depth" validate:"min=1"`
}

// SeparatorByte returns the tier separator as a single byte. Valid after
// validation.
func (c ExtractConfig) SeparatorByte() byte { return c.Separator[0] }

// DevicesConfig configures device bucket roll-up.
type DevicesConfig struct {
	// MinShare is in percentage points, not a fraction.
	MinShare float64 `yaml:"min_share" mapstructure:"min_share" validate:"min=0,max=100"`
}

// IABConfig configures taxonomy scoring.
type IABConfig struct {
	Dictionary string  `yaml:"dictionary" mapstructure:"dictionary"`
	MinScore   float64 `yaml:"min_score" mapstructure:"min_score" validate:"min=0,max=1"`
}

// PathsConfig locates the source exports and the output directory.
type PathsConfig struct {
	Input  string `yaml:"input" mapstructure:"input"`
	Output string `yaml:"output" mapstructure:"output"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment and validates it
// before any source file is touched.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("VISION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.encoding", "utf-8")
	v.SetDefault("csv.provider", "")
	v.SetDefault("extract.separator", "/")
	v.SetDefault("extract.depth", 2)
	v.SetDefault("devices.min_share", 5)
	v.SetDefault("iab.dictionary", "dictionary.jsonl")
	v.SetDefault("iab.min_score", 0.4)
	v.SetDefault("paths.input", ".")
	v.SetDefault("paths.output", "out")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects out-of-range or malformed option values before any
// file is read.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return eris.Wrap(err, "config: validate")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

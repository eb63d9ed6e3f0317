package config

import (
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides (SVI_LOG_LEVEL, ...).
const EnvPrefix = "SVI"

// Config holds the full application configuration.
type Config struct {
	Panorama PanoramaConfig `yaml:"panorama" mapstructure:"panorama"`
	BAG      BAGConfig      `yaml:"bag" mapstructure:"bag"`
	HTTP     HTTPConfig     `yaml:"http" mapstructure:"http"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// PanoramaConfig configures the panorama imagery API.
type PanoramaConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// BAGConfig configures the BAG buildings API.
type BAGConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// HTTPConfig configures outbound requests.
type HTTPConfig struct {
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// OutputConfig configures where fetched imagery and footprints are written.
type OutputConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`
	JPEGQuality int    `yaml:"jpeg_quality" mapstructure:"jpeg_quality"`
	Shapefile   bool   `yaml:"shapefile" mapstructure:"shapefile"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, file and environment.
func Load() (*Config, error) {
	// .env is optional; values already in the environment win.
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("config: no .env loaded", zap.Error(err))
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("panorama.base_url", "https://api.data.amsterdam.nl/panorama")
	v.SetDefault("bag.base_url", "https://api.data.amsterdam.nl/bag/v1.1")
	v.SetDefault("http.timeout_secs", 60)
	v.SetDefault("http.user_agent", "amsterdam-svi/1.0")
	v.SetDefault("output.dir", "./out")
	v.SetDefault("output.jpeg_quality", 90)
	v.SetDefault("output.shapefile", false)
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

	return &cfg, nil
}

// Validate checks that the configuration is usable for outbound requests.
func (c *Config) Validate() error {
	var problems []string

	for name, raw := range map[string]string{
		"panorama.base_url": c.Panorama.BaseURL,
		"bag.base_url":      c.BAG.BaseURL,
	} {
		u, err := url.Parse(raw)
		if raw == "" || err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, name+" must be an absolute URL")
		}
	}
	if c.HTTP.TimeoutSecs <= 0 {
		problems = append(problems, "http.timeout_secs must be positive")
	}
	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		problems = append(problems, "output.jpeg_quality must be between 1 and 100")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// YAML renders the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, eris.Wrap(err, "config: marshal yaml")
	}
	return out, nil
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

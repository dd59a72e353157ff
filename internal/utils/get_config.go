package utils

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Server configuration
	AppPort   string `yaml:"APP_PORT"`
	AppEnv    string `yaml:"APP_ENV"`
	ClientURL string `yaml:"CLIENT_URL"`

	// Logging configuration
	LogPath  string `yaml:"LOG_PATH"`
	LogLevel string `yaml:"LOG_LEVEL"`
	TimeZone string `yaml:"TIME_ZONE"`

	// Rate limiting
	RateLimitMax           int `yaml:"RATE_LIMIT_MAX"`
	RateLimitWindowSeconds int `yaml:"RATE_LIMIT_WINDOW_SECONDS"`

	// Guideline table
	GuidelineCacheSize int `yaml:"GUIDELINE_CACHE_SIZE"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:                "5000",
		AppEnv:                 "development",
		LogPath:                "./logs/app.log",
		LogLevel:               "info",
		TimeZone:               "Local",
		RateLimitMax:           100,
		RateLimitWindowSeconds: 15 * 60,
		GuidelineCacheSize:     256,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults and then
// applies environment overrides. A missing file is not an error.
func LoadConfig(path string) error {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return err
		}
	case os.IsNotExist(err):
		log.Infof("config file %s not found, using defaults", path)
	default:
		return err
	}

	applyEnv(&cfg)
	config = cfg
	return nil
}

func applyEnv(cfg *Config) {
	overrideString(&cfg.AppPort, "APP_PORT")
	overrideString(&cfg.AppPort, "PORT")
	overrideString(&cfg.AppEnv, "APP_ENV")
	overrideString(&cfg.ClientURL, "CLIENT_URL")
	overrideString(&cfg.LogPath, "LOG_PATH")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	overrideString(&cfg.TimeZone, "TIME_ZONE")
	overrideInt(&cfg.RateLimitMax, "RATE_LIMIT_MAX")
	overrideInt(&cfg.RateLimitWindowSeconds, "RATE_LIMIT_WINDOW_SECONDS")
	overrideInt(&cfg.GuidelineCacheSize, "GUIDELINE_CACHE_SIZE")
}

func overrideString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("ignoring %s=%q: %v", key, v, err)
		return
	}
	*dst = n
}

// SetConfigValue overrides a single string key after loading, e.g. from a CLI flag.
func SetConfigValue(key, value string) {
	switch key {
	case "APP_PORT":
		config.AppPort = value
	case "APP_ENV":
		config.AppEnv = value
	case "LOG_PATH":
		config.LogPath = value
	case "LOG_LEVEL":
		config.LogLevel = value
	}
}

func GetAppConfig() Config {
	return config
}

func IsProduction() bool {
	return config.AppEnv == "production"
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_ENV":
		return config.AppEnv
	case "CLIENT_URL":
		return config.ClientURL
	case "LOG_PATH":
		return config.LogPath
	case "LOG_LEVEL":
		return config.LogLevel
	case "TIME_ZONE":
		return config.TimeZone
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "RATE_LIMIT_WINDOW_SECONDS":
		return strconv.Itoa(config.RateLimitWindowSeconds)
	case "GUIDELINE_CACHE_SIZE":
		return strconv.Itoa(config.GuidelineCacheSize)
	default:
		return ""
	}
}

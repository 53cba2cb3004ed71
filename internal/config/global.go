package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Global is process-wide configuration for the resource resolver: where
// to cache resolved namespace/annotation definitions, and how politely to
// fetch them (spec.md §4.3, §5).
type Global struct {
	CacheDir       string        `yaml:"cache_dir,omitempty"`
	HTTPTimeout    time.Duration `yaml:"http_timeout,omitempty"`
	RateLimitHz    float64       `yaml:"rate_limit_hz,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "belc"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	defaultHTTPTimeout = 30 * time.Second
	defaultRateLimitHz = 4.0
)

// DefaultGlobal returns the Global defaults used when no config file and
// no environment overrides are present.
func DefaultGlobal() Global {
	home, err := os.UserHomeDir()
	cacheDir := ".belc-cache"
	if err == nil {
		cacheDir = filepath.Join(home, ".cache", "belc")
	}
	return Global{
		CacheDir:    cacheDir,
		HTTPTimeout: defaultHTTPTimeout,
		RateLimitHz: defaultRateLimitHz,
	}
}

// GlobalConfigPath returns the path to the global config file, respecting
// XDG_CONFIG_HOME the way the teacher's GlobalConfigPath does.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobal loads the global configuration, starting from DefaultGlobal,
// applying the YAML file if present, then applying BELC_* environment
// variables (after loading a .env file, mirroring cmd/bip/s2.go's
// `_ = godotenv.Load()` before flag parsing). Returns defaults, not an
// error, when no config file exists.
func LoadGlobal() (Global, error) {
	_ = godotenv.Load()

	cfg := DefaultGlobal()

	if path := GlobalConfigPath(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Global{}, fmt.Errorf("parsing global config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fine, use defaults
		default:
			return Global{}, fmt.Errorf("reading global config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Global) {
	if v := os.Getenv("BELC_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("BELC_HTTP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("BELC_RATE_LIMIT_HZ"); v != "" {
		if hz, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitHz = hz
		}
	}
}

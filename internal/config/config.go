package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathsprint/internal/problemgen"
)

// EnvPrefix is prepended to every environment variable, e.g. MATHSPRINT_LOG_FILE.
const EnvPrefix = "MATHSPRINT"

// Config holds application configuration loaded from defaults, an optional
// YAML file, the environment and command-line flags (in increasing priority).
type Config struct {
	Env            string `mapstructure:"env" yaml:"env"`               // production or development
	DifficultyName string `mapstructure:"difficulty" yaml:"difficulty"` // easy, medium or hard
	Seed           uint64 `mapstructure:"seed" yaml:"seed"`             // 0 means time-seeded
	Log            Log    `mapstructure:"log" yaml:"log"`
}

// Log configures the file logger. The terminal belongs to the UI, so there
// is no console output; an empty File disables logging.
type Log struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit YAML path. When empty, config.yaml is
	// searched in the user config dir and the working directory, and a
	// missing file is not an error.
	ConfigFile string

	// Flags are bound to configuration keys when present:
	// difficulty, seed, log-file, log-level.
	Flags *pflag.FlagSet

	// EnvFiles are dotenv files loaded before reading the environment.
	// Defaults to ".env". Missing files are ignored.
	EnvFiles []string
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"difficulty": "difficulty",
	"seed":       "seed",
	"log-file":   "log.file",
	"log-level":  "log.level",
}

// Load reads configuration.
func Load(opts Options) (*Config, error) {
	if err := loadDotenv(opts.EnvFiles); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("env", "production")
	v.SetDefault("difficulty", "medium")
	v.SetDefault("seed", 0)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values. The difficulty is not checked since
// unknown names fall back to medium.
func (c *Config) Validate() error {
	switch c.Env {
	case "production", "development":
	default:
		return fmt.Errorf("unknown env %q (want production or development)", c.Env)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Difficulty returns the configured difficulty.
func (c *Config) Difficulty() problemgen.Difficulty {
	return problemgen.ParseDifficulty(c.DifficultyName)
}

// YAML renders the configuration in the config file format.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}

// DefaultConfigDir resolves the config directory in priority order:
// 1. $XDG_CONFIG_HOME/mathsprint
// 2. ~/.config/mathsprint
func DefaultConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mathsprint"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "mathsprint"), nil
}

func loadDotenv(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

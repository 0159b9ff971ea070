package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// configNames are the file names auto-discovery looks for, in order.
var configNames = []string{"rowguard.yaml", "rowguard.yml"}

// Config represents the rowguard configuration from rowguard.yaml.
type Config struct {
	// PolicyFile is the policy document rendered by default.
	PolicyFile string `mapstructure:"policy_file" json:"policy_file"`

	Render RenderConfig `mapstructure:"render" json:"render"`
	Watch  WatchConfig  `mapstructure:"watch" json:"watch"`
	Log    LogConfig    `mapstructure:"log" json:"log"`
}

// RenderConfig holds render command settings.
type RenderConfig struct {
	Indexes bool   `mapstructure:"indexes" json:"indexes"`
	Replace bool   `mapstructure:"replace" json:"replace"`
	Output  string `mapstructure:"output" json:"output"`

	// Extractor selects index column inference: pattern or comparison.
	Extractor string `mapstructure:"extractor" json:"extractor"`
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	Debounce string `mapstructure:"debounce" json:"debounce"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("ROWGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	if _, err := cfg.DebounceInterval(); err != nil {
		return nil, configPath, err
	}

	return &cfg, configPath, nil
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		PolicyFile: "policies.yaml",
		Render:     RenderConfig{Extractor: "pattern"},
		Watch:      WatchConfig{Debounce: "200ms"},
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("policy_file", d.PolicyFile)

	v.SetDefault("render.indexes", d.Render.Indexes)
	v.SetDefault("render.replace", d.Render.Replace)
	v.SetDefault("render.output", d.Render.Output)
	v.SetDefault("render.extractor", d.Render.Extractor)

	v.SetDefault("watch.debounce", d.Watch.Debounce)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for rowguard.yaml or rowguard.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// .git may be a file in worktrees
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// DebounceInterval parses watch.debounce. An empty value means no delay.
func (c *Config) DebounceInterval() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("watch.debounce: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("watch.debounce: must not be negative, got %s", c.Watch.Debounce)
	}
	return d, nil
}

// ResolvedPolicyFile returns the policy file for a command, with the
// command's --file flag taking precedence over policy_file.
func (c *Config) ResolvedPolicyFile(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return c.PolicyFile
}

/*
Package config manages TOML config for SeedCheck services.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/seedcheck/internal/utils"
	"github.com/bastiangx/seedcheck/pkg/dictionary"
	"github.com/bastiangx/seedcheck/pkg/mnemonic"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Validator ValidatorConfig `toml:"validator"`
	Dict      DictConfig      `toml:"dict"`
	Server    ServerConfig    `toml:"server"`
	CLI       CliConfig       `toml:"cli"`
}

// ValidatorConfig holds the passphrase rule options.
type ValidatorConfig struct {
	WordCount     int  `toml:"word_count"`
	MinSuggestLen int  `toml:"min_suggest_len"`
	MaxSuggestLen int  `toml:"max_suggest_len"`
	Checksum      bool `toml:"checksum"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path        string `toml:"path"`
	MaxDistance int    `toml:"max_distance"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxPhraseLen int `toml:"max_phrase_len"`
	MaxLimit     int `toml:"max_limit"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. the platform dir (XDG_CONFIG_HOME or ~/.config, APPDATA on Windows)
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := utils.PlatformConfigDir(homeDir)
	result := utils.CheckDirStatus(primaryPath)
	if result.Writable {
		return primaryPath, nil
	}
	if result.Error != nil {
		log.Warnf("Config dir %s unavailable: %v", primaryPath, result.Error)
	}
	// Not conventional, fallback if the platform dir is not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "seedcheck")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	} else if result.Error != nil {
		log.Debugf("Fallback config dir %s unavailable: %v", macOSPath, result.Error)
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/seedcheck/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Validator: ValidatorConfig{
			WordCount:     mnemonic.DefaultWordCount,
			MinSuggestLen: mnemonic.DefaultMinSuggestLen,
			MaxSuggestLen: mnemonic.DefaultMaxSuggestLen,
			Checksum:      true,
		},
		Dict: DictConfig{
			Path:        "",
			MaxDistance: dictionary.DefaultMaxDistance,
		},
		Server: ServerConfig{
			MaxPhraseLen: 512,
			MaxLimit:     64,
		},
		CLI: CliConfig{
			DefaultLimit: 8,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section and key that still parses, defaults for the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "validator"); ok {
		extractValidatorConfig(section, &config.Validator)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractValidatorConfig(data map[string]any, v *ValidatorConfig) {
	if val, ok := utils.ExtractInt64(data, "word_count"); ok {
		v.WordCount = val
	}
	if val, ok := utils.ExtractInt64(data, "min_suggest_len"); ok {
		v.MinSuggestLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_suggest_len"); ok {
		v.MaxSuggestLen = val
	}
	if val, ok := utils.ExtractBool(data, "checksum"); ok {
		v.Checksum = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "max_distance"); ok {
		dict.MaxDistance = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_phrase_len"); ok {
		server.MaxPhraseLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// ResolveListPath finds the file named by Dict.Path. Absolute paths are used as is;
// relative ones are searched in the working directory, the executable dir and
// <config dir>/lists, the same way the -list flag is.
func (c *Config) ResolveListPath() (string, error) {
	if c.Dict.Path == "" || filepath.IsAbs(c.Dict.Path) {
		return c.Dict.Path, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		log.Debugf("No config dir for word list lookup: %v", err)
		configDir = ""
	}
	resolver, err := utils.NewPathResolver(configDir)
	if err != nil {
		return "", fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	path, err := resolver.GetListFile(c.Dict.Path)
	if err != nil {
		return "", fmt.Errorf("word list %s not found: %w", c.Dict.Path, err)
	}
	return path, nil
}

// LoadDictionary returns the word list named by Dict.Path, or the bundled
// BIP39 English list when no path is set.
func (c *Config) LoadDictionary() (*dictionary.Dictionary, error) {
	if c.Dict.Path == "" {
		if c.Dict.MaxDistance == dictionary.DefaultMaxDistance {
			return dictionary.Default(), nil
		}
		d, err := dictionary.New(dictionary.Default().Words(), dictionary.WithMaxDistance(c.Dict.MaxDistance))
		if err != nil {
			return nil, fmt.Errorf("failed to rebuild default dictionary: %w", err)
		}
		return d, nil
	}
	path, err := c.ResolveListPath()
	if err != nil {
		return nil, err
	}
	return dictionary.LoadFile(path, dictionary.WithMaxDistance(c.Dict.MaxDistance))
}

// NewValidator builds the dictionary and a validator configured from c.
func (c *Config) NewValidator() (*mnemonic.Validator, error) {
	dict, err := c.LoadDictionary()
	if err != nil {
		return nil, err
	}

	opts := []mnemonic.Option{
		mnemonic.WithWordCount(c.Validator.WordCount),
		mnemonic.WithSuggestRange(c.Validator.MinSuggestLen, c.Validator.MaxSuggestLen),
	}
	if !c.Validator.Checksum {
		opts = append(opts, mnemonic.WithChecksum(mnemonic.NoChecksum))
	}
	return mnemonic.New(dict, opts...), nil
}

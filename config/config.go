package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/nPaBwaYT/descbc/cripta"
)

const (
	CONFIG_PATH = "DES_CONFIG_PATH"
	ENV_FILE    = ".env"
)

type Config struct {
	Cipher CipherConfig `yaml:"cipher"`
	Log    LogConfig    `yaml:"log"`
}

type CipherConfig struct {
	Mode        string `yaml:"mode" env:"DES_MODE" env-default:"cbc"`
	BlockPolicy string `yaml:"block_policy" env:"DES_BLOCK_POLICY" env-default:"zero-fill"`
	Output      string `yaml:"output" env:"DES_OUTPUT" env-default:"text"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"DES_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"DES_LOG_FORMAT" env-default:"text"`
}

// LoadEnvFile loads variables from path into the process environment. A
// missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load %s: %w", path, err)
	}
	return nil
}

// Load reads the YAML file named by DES_CONFIG_PATH when it is set and
// fills the rest from the environment.
func Load() (*Config, error) {
	slog.Debug("Loading cipher config")

	var config Config

	configPath := os.Getenv(CONFIG_PATH)
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s does not exist %s", CONFIG_PATH, configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &config); err != nil {
			return nil, fmt.Errorf("cannot load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := c.Cipher.CipherMode(); err != nil {
		return fmt.Errorf("cipher.mode: %w", err)
	}
	if _, err := c.Cipher.Policy(); err != nil {
		return fmt.Errorf("cipher.block_policy: %w", err)
	}
	if c.Cipher.Output != "text" && c.Cipher.Output != "hex" {
		return fmt.Errorf("cipher.output: unknown format %q", c.Cipher.Output)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}

func (c CipherConfig) CipherMode() (cripta.CipherMode, error) {
	return cripta.ParseCipherMode(c.Mode)
}

func (c CipherConfig) Policy() (cripta.BlockPolicy, error) {
	return cripta.ParseBlockPolicy(c.BlockPolicy)
}

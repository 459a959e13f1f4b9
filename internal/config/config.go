package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"wordfix/internal/corrector"
	"wordfix/internal/customdict"
)

type Config struct {
	// FrequencyPath is the "word count" list; line order is rank order.
	FrequencyPath string `yaml:"frequency_dictionary"`
	// VocabularyPath is an optional long word list that only widens the
	// membership set used for joining.
	VocabularyPath string                    `yaml:"vocabulary"`
	Corrector      corrector.CorrectorConfig `yaml:"corrector"`
	Store          customdict.Options        `yaml:"store"`
	HTTPAddr       string                    `yaml:"http_addr"`
}

func Default() Config {
	return Config{
		FrequencyPath: "frequency_dictionary_en_82_765.txt",
		Corrector:     corrector.DefaultConfig(),
		Store: customdict.Options{
			Driver: customdict.DriverNone,
			Redis:  customdict.RedisOptions{Addr: "localhost:6379"},
			SQLite: customdict.SQLiteOptions{Path: "custom_words.db"},
		},
		HTTPAddr: ":8080",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() {
	c.FrequencyPath = getenv("DICTIONARY_PATH", c.FrequencyPath)
	c.VocabularyPath = getenv("VOCABULARY_PATH", c.VocabularyPath)
	c.Store.Driver = getenv("STORE_DRIVER", c.Store.Driver)
	c.Store.Redis.Addr = getenv("REDIS_ADDR", c.Store.Redis.Addr)
	c.Store.Redis.Password = getenv("REDIS_PASSWORD", c.Store.Redis.Password)
	c.Store.Redis.DB = getEnvInt("REDIS_DB", c.Store.Redis.DB)
	c.Store.SQLite.Path = getenv("SQLITE_PATH", c.Store.SQLite.Path)
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
}

func (c Config) Validate() error {
	var errs []error
	if c.FrequencyPath == "" {
		errs = append(errs, errors.New("frequency_dictionary is required"))
	}
	if c.Corrector.MaxEditDistance < 0 {
		errs = append(errs, fmt.Errorf("corrector.max_edit_distance must be >= 0, got %d", c.Corrector.MaxEditDistance))
	}
	if c.Corrector.PrefixLength <= c.Corrector.MaxEditDistance {
		errs = append(errs, fmt.Errorf("corrector.prefix_length %d must exceed max_edit_distance %d",
			c.Corrector.PrefixLength, c.Corrector.MaxEditDistance))
	}
	switch c.Store.Driver {
	case "", customdict.DriverNone, customdict.DriverRedis, customdict.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("store.driver %q is not one of none, redis, sqlite", c.Store.Driver))
	}
	return errors.Join(errs...)
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

// Package config loads application settings from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"production"`

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
		File   string `yaml:"file" env:"LOG_FILE" env-default:""`
	} `yaml:"log"`

	Storage struct {
		DataDir     string `yaml:"data_dir" env:"STORAGE_DATA_DIR" env-default:"data"`
		Timezone    string `yaml:"timezone" env:"STORAGE_TIMEZONE" env-default:"Australia/Sydney"`
		CounterBase int    `yaml:"counter_base" env:"STORAGE_COUNTER_BASE" env-default:"300"`
	} `yaml:"storage"`

	Employees struct {
		File string `yaml:"file" env:"EMPLOYEES_FILE" env-default:"employees.csv"`
	} `yaml:"employees"`

	Server struct {
		Host            string `yaml:"host" env:"SERVER_HOST" env-default:"localhost"`
		Port            int    `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
		ReadTimeout     int    `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15"`
		WriteTimeout    int    `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15"`
		IdleTimeout     int    `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60"`
		ShutdownTimeout int    `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5"`
	} `yaml:"server"`
}

// LoadConfig reads the YAML file at path when it exists, overlaying
// environment variables on top; without a file the environment and the
// defaults alone configure the application.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}
	return cfg, nil
}

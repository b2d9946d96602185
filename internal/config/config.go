package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	embedded "github.com/goserg/elodiff"
)

const (
	EnvConfidence = "ELODIFF_CONFIDENCE"
	EnvLogLevel   = "ELODIFF_LOG_LEVEL"
)

type Estimator struct {
	Confidence float64 `toml:"confidence" validate:"gt=0,lt=1"`
}

type Log struct {
	Level string `toml:"level" validate:"required,loglevel"`
}

type Config struct {
	Estimator Estimator `toml:"estimator"`
	Log       Log       `toml:"log"`
}

// Override changes a loaded config before it is validated.
type Override func(*Config)

// New loads the embedded defaults, then the file at path if it is not
// empty, then the environment, then overrides in order.
func New(path string, overrides ...Override) (Config, error) {
	var cfg Config
	_, err := toml.Decode(embedded.DefaultConfig, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("default config: %w", err)
	}
	if path != "" {
		_, err = toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, err
		}
	}

	if confidence := os.Getenv(EnvConfidence); confidence != "" {
		cfg.Estimator.Confidence, err = strconv.ParseFloat(confidence, 64)
		if err != nil {
			return Config{}, fmt.Errorf("env %s: %w", EnvConfidence, err)
		}
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	for _, override := range overrides {
		override(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	v := validator.New()
	err := v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logrus.ParseLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

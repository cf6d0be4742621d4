package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no path is given and YEARPROGRESS_CONFIG is unset.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Progress struct {
		Capacity     int    `yaml:"capacity" env:"YEARPROGRESS_CAPACITY" validate:"min=1,max=200"`
		FilledGlyph  string `yaml:"filled_glyph" env:"YEARPROGRESS_FILLED_GLYPH" validate:"required"`
		EmptyGlyph   string `yaml:"empty_glyph" env:"YEARPROGRESS_EMPTY_GLYPH" validate:"required"`
		Open         string `yaml:"open"`
		Close        string `yaml:"close"`
		ClampPercent bool   `yaml:"clamp_percent" env:"YEARPROGRESS_CLAMP_PERCENT"`
	} `yaml:"progress"`
	Label struct {
		Timezone string `yaml:"timezone" env:"YEARPROGRESS_TIMEZONE" validate:"required,tzname"`
	} `yaml:"label"`
	Template struct {
		Path string `yaml:"path" env:"YEARPROGRESS_TEMPLATE"`
	} `yaml:"template"`
	Schedule struct {
		Cron       string `yaml:"cron" env:"YEARPROGRESS_CRON" validate:"required,cronspec"`
		RunOnStart bool   `yaml:"run_on_start" env:"RUN_ON_START"`
	} `yaml:"schedule"`
}

// Default returns the configuration that reproduces the profile page.
func Default() *Config {
	cfg := &Config{}
	cfg.Progress.Capacity = 30
	cfg.Progress.FilledGlyph = "█"
	cfg.Progress.EmptyGlyph = "▁"
	cfg.Progress.Open = "{ "
	cfg.Progress.Close = " }"
	cfg.Label.Timezone = "Local"
	cfg.Schedule.Cron = "0 0 0 * * *"
	return cfg
}

// ResolvePath picks the config file: explicit path, then YEARPROGRESS_CONFIG, then DefaultPath.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	if v := os.Getenv("YEARPROGRESS_CONFIG"); v != "" {
		return v
	}
	return DefaultPath
}

// Load starts from Default, overlays the YAML file if it exists, then applies
// environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges and formats of every field.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(yamlName)
	if err := v.RegisterValidation("cronspec", validCron); err != nil {
		return fmt.Errorf("register cron validation: %w", err)
	}
	if err := v.RegisterValidation("tzname", validTimezone); err != nil {
		return fmt.Errorf("register timezone validation: %w", err)
	}

	err := v.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		// Namespace is "Config.progress.capacity"; drop the root type name.
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		msgs = append(msgs, fmt.Sprintf("%s fails %q", field, fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Location returns the time zone used for the date label.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Label.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	return loc, nil
}

// cronParser accepts the six-field (with seconds) specs used by the scheduler.
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func validCron(fl validator.FieldLevel) bool {
	_, err := cronParser.Parse(fl.Field().String())
	return err == nil
}

// validTimezone accepts any name time.LoadLocation does, including "Local".
func validTimezone(fl validator.FieldLevel) bool {
	_, err := time.LoadLocation(fl.Field().String())
	return err == nil
}

func yamlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

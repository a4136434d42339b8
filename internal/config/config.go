// Package config handles loading and parsing application configuration.
// It supports these sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. The environment alone, when neither of the above is set.
//
// Values from the YAML file can always be overridden by the
// corresponding environment variable (env:"...").
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
)

// Config is the root configuration structure.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	Database `yaml:"database"`
}

// Database holds the connection settings. Path is used by sqlite3 only;
// the network settings are used by the PostgreSQL drivers.
type Database struct {
	Driver   string `yaml:"driver"   env:"DB_DRIVER"   env-default:"sqlite3" validate:"oneof=sqlite3 pgx postgres"`
	Path     string `yaml:"path"     env:"DB_PATH"     validate:"required_if=Driver sqlite3"`
	Host     string `yaml:"host"     env:"DB_HOST"     validate:"required_unless=Driver sqlite3"`
	Port     int    `yaml:"port"     env:"DB_PORT"     env-default:"5432" validate:"gte=0,lte=65535"`
	Name     string `yaml:"name"     env:"DB_NAME"     validate:"required_unless=Driver sqlite3"`
	User     string `yaml:"user"     env:"DB_USER"     validate:"required_unless=Driver sqlite3"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	SSLMode  string `yaml:"sslmode"  env:"DB_SSLMODE"  env-default:"disable"`

	// SkipSchema turns off creating the Employee, Product and Student
	// tables on startup when they do not exist yet.
	SkipSchema bool `yaml:"skip_schema" env:"DB_SKIP_SCHEMA"`
}

// DSN returns the data source name passed to sql.Open for the driver.
func (d Database) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

// MustLoad reads, validates, and returns the application config.
// It terminates the process when the configuration is unusable.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return cfg
}

// Load reads the YAML file at path, or only the environment when path is
// empty, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			return nil, validationError(validateErrs)
		}
		return nil, err
	}

	return &cfg, nil
}

// validationError converts validator field errors into one readable error.
func validationError(errs validator.ValidationErrors) error {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required_if", "required_unless":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required for this driver", e.Field()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of [%s]", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return fmt.Errorf("invalid config: %s", strings.Join(errMessages, ", "))
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"laundry/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config is read from an optional YAML file and then overridden by environment variables.
type Config struct {
	HTTPPort    string `yaml:"http_port"`
	StoreDriver string `yaml:"store_driver"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	NotifierInterval time.Duration `yaml:"notifier_interval"`

	AMQPURL      string   `yaml:"amqp_url"`
	AMQPExchange string   `yaml:"amqp_exchange"`
	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`

	// Actors are created at startup unless an actor with the same name and role exists.
	Actors []ActorSeed `yaml:"actors"`
}

type ActorSeed struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

func defaultConfig() Config {
	return Config{
		HTTPPort:         "8080",
		StoreDriver:      StoreMemory,
		LogLevel:         "info",
		LogFormat:        "json",
		DBHost:           "localhost",
		DBPort:           "5432",
		DBSslMode:        "disable",
		NotifierInterval: 10 * time.Second,
	}
}

// LoadConfig reads path when it is not empty, then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"HTTP_PORT":     &c.HTTPPort,
		"STORE_DRIVER":  &c.StoreDriver,
		"LOG_LEVEL":     &c.LogLevel,
		"LOG_FORMAT":    &c.LogFormat,
		"DB_HOST":       &c.DBHost,
		"DB_PORT":       &c.DBPort,
		"DB_USER":       &c.DBUser,
		"DB_PASSWORD":   &c.DBPassword,
		"DB_NAME":       &c.DBName,
		"DB_SSLMODE":    &c.DBSslMode,
		"AMQP_URL":      &c.AMQPURL,
		"AMQP_EXCHANGE": &c.AMQPExchange,
		"KAFKA_TOPIC":   &c.KafkaTopic,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	if v, ok := lookup("KAFKA_BROKERS"); ok {
		c.KafkaBrokers = splitList(v)
	}
	if v, ok := lookup("NOTIFIER_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("NOTIFIER_INTERVAL", err)
		}
		c.NotifierInterval = d
	}
	return nil
}

func (c Config) Validate() error {
	var errList []error
	if c.HTTPPort == "" {
		errList = append(errList, errs.NewValueIsRequiredError("http_port"))
	}
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.DBName == "" {
			errList = append(errList, errs.NewValueIsRequiredError("db_name"))
		}
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"store_driver", fmt.Errorf("%q is neither %s nor %s", c.StoreDriver, StoreMemory, StorePostgres)))
	}
	if c.NotifierInterval <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("notifier_interval", c.NotifierInterval, "1ns", "-"))
	}
	return errors.Join(errList...)
}

// DSN is the libpq connection string of the postgres store.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

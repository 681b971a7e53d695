package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

type ServerConfig struct {
	Port         string   `yaml:"port"`
	BasePath     string   `yaml:"base_path"`
	Mode         string   `yaml:"mode"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
	LogLevel string `yaml:"log_level"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

type EventsConfig struct {
	Driver  string `yaml:"driver"`
	Stream  string `yaml:"stream"`
	MaxLen  int64  `yaml:"max_len"`
	AMQPURL string `yaml:"amqp_url"`
	Queue   string `yaml:"queue"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Events   EventsConfig   `yaml:"events"`
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EventsNone  = "none"
	EventsLog   = "log"
	EventsRedis = "redis"
	EventsAMQP  = "amqp"
)

// Default returns the configuration used for every field the YAML file and
// the environment leave empty.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8081",
			BasePath:     "/api",
			Mode:         "release",
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver:   DriverSQLite,
			Database: "market.db",
			LogLevel: "warn",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Events: EventsConfig{
			Driver: EventsNone,
			Stream: "market-events",
			MaxLen: 10000,
			Queue:  "market-events",
		},
	}
}

// LoadConfig decodes filename on top of the defaults.
func LoadConfig(filename string) (Config, error) {
	config := Default()
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decode %s: %w", filename, err)
	}

	return config, nil
}

// Load reads envFile (when it exists) into the process environment, decodes
// filename (when it exists) and applies MARKET_* overrides.
func Load(filename, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	config := Default()
	if filename != "" {
		loaded, err := LoadConfig(filename)
		switch {
		case err == nil:
			config = loaded
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, err
		}
	}

	if err := applyEnv(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func applyEnv(config *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString("MARKET_PORT", &config.Server.Port)
	setString("MARKET_BASE_PATH", &config.Server.BasePath)
	setString("MARKET_GIN_MODE", &config.Server.Mode)
	if v, ok := os.LookupEnv("MARKET_ALLOW_ORIGINS"); ok {
		config.Server.AllowOrigins = splitList(v)
	}

	setString("MARKET_DB_DRIVER", &config.Database.Driver)
	setString("MARKET_DB_DSN", &config.Database.DSN)
	setString("MARKET_DB_USERNAME", &config.Database.Username)
	setString("MARKET_DB_PASSWORD", &config.Database.Password)
	setString("MARKET_DB_HOST", &config.Database.Host)
	setString("MARKET_DB_PORT", &config.Database.Port)
	setString("MARKET_DB_NAME", &config.Database.Database)
	setString("MARKET_DB_LOG_LEVEL", &config.Database.LogLevel)

	setString("MARKET_REDIS_ADDR", &config.Redis.Addr)
	setString("MARKET_REDIS_PASSWORD", &config.Redis.Password)
	if v, ok := os.LookupEnv("MARKET_REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MARKET_REDIS_DB: %w", err)
		}
		config.Redis.Database = n
	}

	setString("MARKET_EVENTS_DRIVER", &config.Events.Driver)
	setString("MARKET_EVENTS_STREAM", &config.Events.Stream)
	setString("MARKET_AMQP_URL", &config.Events.AMQPURL)
	setString("MARKET_EVENTS_QUEUE", &config.Events.Queue)
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	switch c.Events.Driver {
	case EventsNone, EventsLog, EventsRedis:
	case EventsAMQP:
		if c.Events.AMQPURL == "" {
			return errors.New("events.amqp_url is required for the amqp driver")
		}
	default:
		return fmt.Errorf("unknown events driver %q", c.Events.Driver)
	}
	if c.Server.Port == "" {
		return errors.New("server.port must not be empty")
	}
	if len(c.Server.AllowOrigins) == 0 {
		return errors.New("server.allow_origins must list at least one origin")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// StorageConfig elige el backend: memory (default), postgres o sqlite.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig: Addr vacío => sin cache de vets.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// legacyEnv son los nombres de env que ya se usaban antes del prefijo.
var legacyEnv = map[string]string{
	"server.port":   "PORT",
	"storage.dsn":   "DB_DSN",
	"logger.level":  "LOG_LEVEL",
	"logger.format": "LOG_FORMAT",
	"app.name":      "APP_NAME",
}

// Load lee config.yaml (opcional) y env PETCLINIC_*. configFile vacío =>
// busca "config" en ./configs y en el directorio actual.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PETCLINIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for key, legacy := range legacyEnv {
		envKey := "PETCLINIC_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, legacy); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	// DB_DSN sin driver explícito => postgres (compat)
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverMemory
		if cfg.Storage.DSN != "" {
			cfg.Storage.Driver = DriverPostgres
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "petclinic")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("storage.driver", "")
	v.SetDefault("storage.dsn", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("storage.dsn is required for driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	return nil
}

package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Database struct {
		Driver   string `mapstructure:"driver"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
		TimeZone string `mapstructure:"timezone"`
	} `mapstructure:"database"`
	JWT struct {
		Secret string `mapstructure:"secret"`
		Issuer string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`
	Kafka struct {
		Enabled bool     `mapstructure:"enabled"`
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	Otel struct {
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"otel"`
	Limiter struct {
		Max        int           `mapstructure:"max"`
		Expiration time.Duration `mapstructure:"expiration"`
	} `mapstructure:"limiter"`
	Assets struct {
		Bucket          string `mapstructure:"bucket"`
		Region          string `mapstructure:"region"`
		Endpoint        string `mapstructure:"endpoint"`
		PublicURL       string `mapstructure:"public_url"`
		PathStyle       bool   `mapstructure:"path_style"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"assets"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
}

var (
	config     *Config
	configOnce sync.Once
	configErr  error
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "groeneweide")
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.env", "development")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "groeneweide")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "Europe/Amsterdam")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "GROENEWEIDE")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"127.0.0.1:9092"})
	v.SetDefault("kafka.topic", "groeneweide.orders")
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("limiter.max", 10)
	v.SetDefault("limiter.expiration", time.Second)
	v.SetDefault("assets.bucket", "")
	v.SetDefault("assets.region", "eu-west-1")
	v.SetDefault("assets.endpoint", "")
	v.SetDefault("assets.public_url", "")
	v.SetDefault("assets.path_style", false)
	v.SetDefault("assets.access_key_id", "")
	v.SetDefault("assets.secret_access_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "./logs/app.log")
}

// ReadConfig loads config.yaml from the given paths (or . and ./config),
// applying GROENEWEIDE_* environment overrides. A missing file is not an
// error; defaults apply.
func ReadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("GROENEWEIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads the process-wide configuration once.
func LoadConfig() (*Config, error) {
	configOnce.Do(func() {
		config, configErr = ReadConfig()
	})
	return config, configErr
}

// GetConfig returns the configuration loaded by LoadConfig, loading it on
// first use. It panics when the config file exists but cannot be parsed.
func GetConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Префикс переменных окружения, переопределяющих значения из файла
const envPrefix = "MEDBOOK_"

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
	CookieName      string `toml:"cookie_name"`
	BcryptCost      int    `toml:"bcrypt_cost"`
}

type BookingConfig struct {
	// Длительность приёма, если мотив не указан
	DefaultDurationMinutes int `toml:"default_duration_minutes"`
	// Повторы сериализуемой транзакции при конфликте
	MaxSerializationRetries int `toml:"max_serialization_retries"`
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8000,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "medbook",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "medbook",
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 24 * 60,
			CookieName:      "session",
			BcryptCost:      10,
		},
		Booking: BookingConfig{
			DefaultDurationMinutes:  30,
			MaxSerializationRetries: 3,
		},
	}
}

// Load читает TOML-файл поверх значений по умолчанию, затем .env и переменные MEDBOOK_*
// Отсутствующий файл не ошибка: конфигурация может целиком прийти из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	// .env не обязателен
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	strVars := map[string]*string{
		"DB_HOST":     &cfg.Database.Host,
		"DB_USER":     &cfg.Database.User,
		"DB_PASSWORD": &cfg.Database.Password,
		"DB_NAME":     &cfg.Database.DBName,
		"DB_SSLMODE":  &cfg.Database.SSLMode,
		"LOG_LEVEL":   &cfg.Logs.Level,
		"LOG_FILE":    &cfg.Logs.File,
		"JWT_SECRET":  &cfg.Auth.JWTSecret,
	}
	for name, dst := range strVars {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}

	intVars := map[string]*int{
		"HTTP_PORT": &cfg.Server.HTTPPort,
		"DB_PORT":   &cfg.Database.Port,
	}
	for name, dst := range intVars {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a number", ErrInvalidConfig, envPrefix, name, v)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv(envPrefix + "METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sMETRICS_ENABLED=%q", ErrInvalidConfig, envPrefix, v)
		}
		cfg.Metrics.Enabled = enabled
	}

	return nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %sJWT_SECRET)", ErrInvalidConfig, envPrefix)
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Booking.DefaultDurationMinutes < 5 {
		return fmt.Errorf("%w: booking.default_duration_minutes must be at least 5", ErrInvalidConfig)
	}
	if c.Booking.MaxSerializationRetries < 0 {
		return fmt.Errorf("%w: booking.max_serialization_retries must not be negative", ErrInvalidConfig)
	}
	return nil
}

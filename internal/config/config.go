package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы журнала вместимости
const (
	LedgerDriverMemory   = "memory"
	LedgerDriverPostgres = "postgres"
	LedgerDriverRedis    = "redis"
)

// Провайдеры оплаты
const (
	PaymentProviderStub = "stub"
	PaymentProviderHTTP = "http"
)

// Префикс переменных окружения
const envPrefix = "DAYCARE_"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Ledger   LedgerConfig   `toml:"ledger"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Payment  PaymentConfig  `toml:"payment"`
	Session  SessionConfig  `toml:"session"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"` // пусто - только stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type LedgerConfig struct {
	Driver   string `toml:"driver"`    // memory | postgres | redis
	RedisKey string `toml:"redis_key"` // имя hash для драйвера redis
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type PaymentConfig struct {
	Provider string `toml:"provider"` // stub | http
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"` // секунды
	Currency string `toml:"currency"`
}

type SessionConfig struct {
	CookieName    string `toml:"cookie_name"`
	HashKey       string `toml:"hash_key"`
	BlockKey      string `toml:"block_key"`
	IdleTTL       int    `toml:"idle_ttl"` // минуты
	SweepSchedule string `toml:"sweep_schedule"`
}

// IdleTTLDuration время бездействия, после которого сессия удаляется
func (s SessionConfig) IdleTTLDuration() time.Duration {
	return time.Duration(s.IdleTTL) * time.Minute
}

// Load читает TOML файл, затем .env и переменные окружения DAYCARE_*
// Отсутствующий файл не является ошибкой: используются значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация для локального запуска без внешних зависимостей
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "daycare-booking",
		},
		Ledger: LedgerConfig{
			Driver:   LedgerDriverMemory,
			RedisKey: "daycare:ledger",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "daycare",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Payment: PaymentConfig{
			Provider: PaymentProviderStub,
			Timeout:  5,
			Currency: "INR",
		},
		Session: SessionConfig{
			CookieName:    "daycare_session",
			IdleTTL:       30,
			SweepSchedule: "@every 1m",
		},
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Ledger.Driver {
	case LedgerDriverMemory:
	case LedgerDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres ledger", ErrInvalidConfig)
		}
	case LedgerDriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis ledger", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown ledger.driver %q", ErrInvalidConfig, c.Ledger.Driver)
	}

	switch c.Payment.Provider {
	case PaymentProviderStub:
	case PaymentProviderHTTP:
		if c.Payment.URL == "" {
			return fmt.Errorf("%w: payment.url is required for http provider", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown payment.provider %q", ErrInvalidConfig, c.Payment.Provider)
	}

	if c.Payment.Currency == "" {
		return fmt.Errorf("%w: payment.currency is required", ErrInvalidConfig)
	}

	// securecookie: hash key 32 или 64 байта, block key 16, 24 или 32 байта
	if c.Session.HashKey != "" && len(c.Session.HashKey) < 32 {
		return fmt.Errorf("%w: session.hash_key must be at least 32 bytes", ErrInvalidConfig)
	}
	switch len(c.Session.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("%w: session.block_key must be 16, 24 or 32 bytes", ErrInvalidConfig)
	}

	if c.Session.CookieName == "" {
		return fmt.Errorf("%w: session.cookie_name is required", ErrInvalidConfig)
	}

	return nil
}

// applyEnv переопределяет адреса и секреты из окружения
func (c *Config) applyEnv() error {
	setString(&c.Ledger.Driver, "LEDGER_DRIVER")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Payment.Provider, "PAYMENT_PROVIDER")
	setString(&c.Payment.URL, "PAYMENT_URL")
	setString(&c.Session.HashKey, "SESSION_HASH_KEY")
	setString(&c.Session.BlockKey, "SESSION_BLOCK_KEY")
	setString(&c.Logs.Level, "LOG_LEVEL")

	if err := setInt(&c.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Database.Port, "DB_PORT"); err != nil {
		return err
	}

	return nil
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, name string) error {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, envPrefix, name, err)
	}
	*dst = n
	return nil
}

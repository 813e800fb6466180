package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения, переопределяющие секреты из файла
const (
	EnvDBPassword    = "BOOKING_DB_PASSWORD"
	EnvRedisPassword = "BOOKING_REDIS_PASSWORD"
	EnvAdminToken    = "BOOKING_ADMIN_TOKEN"
	EnvClinicAPIURL  = "BOOKING_CLINIC_API_URL"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	ClinicAPI ClinicAPIConfig `toml:"clinic_api"`
	Slots     SlotsConfig     `toml:"slots"`
	OTP       OTPConfig       `toml:"otp"`
	Admin     AdminConfig     `toml:"admin"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
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
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	DoctorsCacheTTL int    `toml:"doctors_cache_ttl"` // секунды
}

type ClinicAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SlotsConfig параметры генерации окна по умолчанию
type SlotsConfig struct {
	Timezone    string `toml:"timezone"`     // IANA, например "Asia/Kolkata"
	LabelLayout string `toml:"label_layout"` // Формат метки времени как во внешнем API
}

// Location возвращает часовой пояс клиники
func (s SlotsConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

type OTPConfig struct {
	ResendCooldown int `toml:"resend_cooldown"` // секунды
}

type AdminConfig struct {
	Token string `toml:"token"` // Пусто - административные маршруты закрыты
}

// Load загружает конфигурацию из TOML-файла
// Перед чтением подхватывает .env (если есть), затем применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv(EnvAdminToken); ok {
		c.Admin.Token = v
	}
	if v, ok := os.LookupEnv(EnvClinicAPIURL); ok {
		c.ClinicAPI.URL = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "smc_doctor_booking")

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 10)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Redis.Addr, "localhost:6379")
	setDefault(&c.Redis.DoctorsCacheTTL, 30)

	setDefault(&c.ClinicAPI.Timeout, 5)

	setDefault(&c.Slots.Timezone, "Local")
	setDefault(&c.Slots.LabelLayout, domain.TimeLabelLayout)

	setDefault(&c.OTP.ResendCooldown, domain.OTPResendSeconds)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}

	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}

	if u, err := url.Parse(c.ClinicAPI.URL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, "clinic_api.url must be an absolute URL")
	}

	if _, err := c.Slots.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("slots.timezone: %v", err))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

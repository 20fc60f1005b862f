package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações do userhub.
// Os valores vêm do ambiente (o main.go carrega o .env antes via godotenv).
type Config struct {
	// Geral
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DBTimeoutSec   int    `mapstructure:"DB_TIMEOUT_SEC"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	// Cache (Redis). RedisAddr vazio desliga o cache.
	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	CacheTTLSec int    `mapstructure:"CACHE_TTL_SEC"`

	// Servidor HTTP
	HTTPReadTimeoutSec  int `mapstructure:"HTTP_READ_TIMEOUT_SEC"`
	HTTPWriteTimeoutSec int `mapstructure:"HTTP_WRITE_TIMEOUT_SEC"`
	ShutdownTimeoutSec  int `mapstructure:"SHUTDOWN_TIMEOUT_SEC"`
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// Retorna erro se DATABASE_URL não estiver definida ou se algum valor numérico for inválido.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// 1. Geral
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	// 2. Banco de Dados
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)

	// 3. Cache
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL_SEC", 300)

	// 4. Servidor
	v.SetDefault("HTTP_READ_TIMEOUT_SEC", 10)
	v.SetDefault("HTTP_WRITE_TIMEOUT_SEC", 10)
	v.SetDefault("SHUTDOWN_TIMEOUT_SEC", 15)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL must be set")
	}
	if cfg.DBTimeoutSec <= 0 {
		return nil, errors.New("config: DB_TIMEOUT_SEC must be positive")
	}
	if cfg.DBMaxOpenConns <= 0 || cfg.DBMaxIdleConns < 0 {
		return nil, errors.New("config: DB_MAX_OPEN_CONNS must be positive and DB_MAX_IDLE_CONNS non-negative")
	}

	return &cfg, nil
}

// DBTimeout é o limite de cada chamada ao banco.
func (c *Config) DBTimeout() time.Duration {
	return time.Duration(c.DBTimeoutSec) * time.Second
}

// CacheTTL é a expiração das entradas do cache-aside.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSec) * time.Second
}

func (c *Config) HTTPReadTimeout() time.Duration {
	return time.Duration(c.HTTPReadTimeoutSec) * time.Second
}

func (c *Config) HTTPWriteTimeout() time.Duration {
	return time.Duration(c.HTTPWriteTimeoutSec) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// CacheEnabled indica se o Redis deve ser usado.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

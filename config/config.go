package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	KDF      KDFConfig      `mapstructure:"kdf"`
	Cipher   CipherConfig   `mapstructure:"cipher"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// KDFConfig holds passphrase key-derivation parameters. The same parameters
// drive passphrase hashing and the entropy-blob encryption key.
type KDFConfig struct {
	Algorithm  string `mapstructure:"algorithm"` // currently only argon2id
	Iterations uint32 `mapstructure:"iterations"`
	MemoryKiB  uint32 `mapstructure:"memory_kib"`
	Threads    uint8  `mapstructure:"threads"`
}

// Validate checks the KDF section against supported values.
func (k KDFConfig) Validate() error {
	if k.Algorithm != "argon2id" {
		return fmt.Errorf("unsupported kdf algorithm: %s", k.Algorithm)
	}
	if k.Iterations == 0 || k.MemoryKiB == 0 || k.Threads == 0 {
		return fmt.Errorf("kdf iterations, memory_kib and threads must be positive")
	}
	return nil
}

// CipherConfig selects the authenticated cipher sealing entropy blobs.
type CipherConfig struct {
	Algorithm string `mapstructure:"algorithm"` // aes-256-gcm, chacha20poly1305
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WCS_ (Wallet Custody Service).
// Nested keys use underscore: WCS_DATABASE_HOST, WCS_KDF_ITERATIONS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_custody")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kdf.algorithm", "argon2id")
	v.SetDefault("kdf.iterations", 1)
	v.SetDefault("kdf.memory_kib", 64*1024)
	v.SetDefault("kdf.threads", 4)
	v.SetDefault("cipher.algorithm", "aes-256-gcm")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WCS_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.KDF.Validate(); err != nil {
		return nil, fmt.Errorf("validating kdf config: %w", err)
	}

	return &cfg, nil
}

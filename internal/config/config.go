package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Env    string
	Server ServerConfig
	DB     DBConfig
	Auth   AuthConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
	// AllowAnonymousCreate lets unauthenticated callers create reservations
	// under the system default identity. Deliberately relaxed for this
	// deployment; disable it for production hardening.
	AllowAnonymousCreate bool `mapstructure:"allow_anonymous_create"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./internal/config")

	viper.SetDefault("env", "local")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("auth.token_ttl_hours", 240)
	viper.SetDefault("auth.allow_anonymous_create", true)

	viper.SetEnvPrefix("GECOS")
	// Nested keys hold dots, env vars hold underscores: map "db.host" onto
	// GECOS_DB_HOST so the env overrides actually apply.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

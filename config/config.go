package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	LogLevel string
	Server   Server
	Database Database
	Gemini   Gemini
	Storage  Storage
}

type Server struct {
	Port               string
	CORSAllowedOrigins []string
}

type Database struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Gemini struct {
	APIKey string
	Model  string
}

// Storage points at an S3-compatible bucket. An empty Bucket disables upload URLs.
type Storage struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
	PresignExpiry   time.Duration
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 10)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("STORAGE_REGION", "auto")
	v.SetDefault("STORAGE_PRESIGN_EXPIRY", "15m")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	return load(v), nil
}

func load(v *viper.Viper) *Config {
	var config Config

	config.Env = v.GetString("APP_ENV")
	config.LogLevel = v.GetString("LOG_LEVEL")

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.MaxOpenConns = v.GetInt("DATABASE_MAX_OPEN_CONNS")
	config.Database.MaxIdleConns = v.GetInt("DATABASE_MAX_IDLE_CONNS")
	config.Database.ConnMaxLifetime = v.GetDuration("DATABASE_CONN_MAX_LIFETIME")

	config.Gemini.APIKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.Model = v.GetString("GEMINI_MODEL")

	config.Storage.Endpoint = v.GetString("STORAGE_ENDPOINT")
	config.Storage.Region = v.GetString("STORAGE_REGION")
	config.Storage.Bucket = v.GetString("STORAGE_BUCKET")
	config.Storage.AccessKeyID = v.GetString("STORAGE_ACCESS_KEY_ID")
	config.Storage.SecretAccessKey = v.GetString("STORAGE_SECRET_ACCESS_KEY")
	config.Storage.PublicURL = v.GetString("STORAGE_PUBLIC_URL")
	config.Storage.PresignExpiry = v.GetDuration("STORAGE_PRESIGN_EXPIRY")

	log.Info().
		Str("env", config.Env).
		Str("port", config.Server.Port).
		Str("db_host", config.Database.Host).
		Str("db_name", config.Database.Name).
		Bool("gemini_enabled", config.Gemini.APIKey != "").
		Bool("storage_enabled", config.Storage.Bucket != "").
		Msg("Config loaded")
	return &config
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

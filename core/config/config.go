package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port     int
	LogLevel string
	BaseURL  string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Key            string
	AccessTokenTTL int // seconds
	Issuer         string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	PicturesBucket  string
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	AWS      AWSConfig
	Google   GoogleOAuthConfig
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads .env (when present) and the process environment.
// Defaults cover local development; production overrides everything.
func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()

		viper.AutomaticEnv()

		viper.SetDefault("SERVER_PORT", 7070)
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("BASE_URL", "http://localhost:7070")

		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", 5432)
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "sportsmatch")
		viper.SetDefault("DB_SSLMODE", "disable")

		viper.SetDefault("REDIS_ADDR", "localhost:6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)

		viper.SetDefault("JWT_KEY", "dev-only-key")
		viper.SetDefault("ACCESS_TOKEN_EXPIRE_TIME", 7600)
		viper.SetDefault("JWT_ISSUER", "sportsmatch")

		viper.SetDefault("AWS_REGION", "us-east-1")
		viper.SetDefault("S3_PICTURES_BUCKET", "sportsmatch-user-pictures")

		cfg = &Config{
			Server: ServerConfig{
				Port:     viper.GetInt("SERVER_PORT"),
				LogLevel: viper.GetString("LOG_LEVEL"),
				BaseURL:  viper.GetString("BASE_URL"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetInt("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("REDIS_ADDR"),
				Password: viper.GetString("REDIS_PASSWORD"),
				DB:       viper.GetInt("REDIS_DB"),
			},
			JWT: JWTConfig{
				Key:            viper.GetString("JWT_KEY"),
				AccessTokenTTL: viper.GetInt("ACCESS_TOKEN_EXPIRE_TIME"),
				Issuer:         viper.GetString("JWT_ISSUER"),
			},
			AWS: AWSConfig{
				Region:          viper.GetString("AWS_REGION"),
				AccessKeyID:     viper.GetString("S3_ACCESS_KEY"),
				SecretAccessKey: viper.GetString("S3_SECRET_KEY"),
				PicturesBucket:  viper.GetString("S3_PICTURES_BUCKET"),
			},
			Google: GoogleOAuthConfig{
				ClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
				ClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
				RedirectURI:  viper.GetString("GOOGLE_REDIRECT_URI"),
			},
		}
	})
	return cfg
}

// Get returns the loaded config; Load is idempotent so callers may use
// either entry point.
func Get() *Config {
	return Load()
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Model    ModelConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	Audience    string
	ExpiryHours int
}

// ModelConfig aponta para o artefato do classificador de sentimento
// carregado na inicialização
type ModelConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do arquivo .env
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("JWT_EXPIRY_HOURS", 2)
	viper.SetDefault("MODEL_PATH", "./model/sentiment.json")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			Issuer:      viper.GetString("JWT_ISSUER"),
			Audience:    viper.GetString("JWT_AUDIENCE"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Model: ModelConfig{
			Path: viper.GetString("MODEL_PATH"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// TokenExpiry converte o prazo configurado em duração
func (j *JWTConfig) TokenExpiry() time.Duration {
	return time.Duration(j.ExpiryHours) * time.Hour
}

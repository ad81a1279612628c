package configprovider

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"inventory/providers"
)

type DatabaseOptions struct {
	Name     string `env:"DB_NAME" envDefault:"inventory"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

type MongoOptions struct {
	URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DB" envDefault:"inventory"`
}

type RedisOptions struct {
	Addr     string        `env:"REDIS_ADDR"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

type AuthOptions struct {
	JWTSecret     string        `env:"SECRET_KEY"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
	AdminUsername string        `env:"ADMIN_USERNAME"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
}

type PolicyOptions struct {
	RequireSource       bool `env:"REQUIRE_SOURCE" envDefault:"false"`
	RequireManufacturer bool `env:"REQUIRE_MANUFACTURER" envDefault:"false"`
}

type EnvConfigProvider struct {
	ServerPort     string `env:"SERVER_PORT" envDefault:"8080"`
	StoreDriver    string `env:"STORE_DRIVER" envDefault:"postgres"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://database/migrations"`
	Database       DatabaseOptions
	Mongo          MongoOptions
	Redis          RedisOptions
	Auth           AuthOptions
	Policy         PolicyOptions
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}
	if err := env.Parse(e); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	e.StoreDriver = strings.ToLower(strings.TrimSpace(e.StoreDriver))
	switch e.StoreDriver {
	case "postgres", "mongo", "memory":
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", e.StoreDriver)
	}
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.ServerPort
}

func (e *EnvConfigProvider) GetStoreDriver() string {
	return e.StoreDriver
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.Database.User, e.Database.Password, e.Database.Host, e.Database.Port, e.Database.Name)
}

func (e *EnvConfigProvider) GetMigrationsPath() string {
	return e.MigrationsPath
}

func (e *EnvConfigProvider) GetMongoURI() string {
	return e.Mongo.URI
}

func (e *EnvConfigProvider) GetMongoDatabase() string {
	return e.Mongo.Database
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.Redis.Addr
}

func (e *EnvConfigProvider) GetCacheTTL() time.Duration {
	return e.Redis.CacheTTL
}

func (e *EnvConfigProvider) GetJWTSecret() string {
	return e.Auth.JWTSecret
}

func (e *EnvConfigProvider) GetTokenTTL() time.Duration {
	return e.Auth.TokenTTL
}

func (e *EnvConfigProvider) GetAdminCredentials() (string, string) {
	return e.Auth.AdminUsername, e.Auth.AdminPassword
}

func (e *EnvConfigProvider) RequireSource() bool {
	return e.Policy.RequireSource
}

func (e *EnvConfigProvider) RequireManufacturer() bool {
	return e.Policy.RequireManufacturer
}

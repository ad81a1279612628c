package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"inventory/models"
)

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetUserFromContext(r *http.Request) (models.Identity, error)
}

type TokenProvider interface {
	GenerateJWT(identity models.Identity) (string, error)
	ParseJWT(tokenStr string) (models.Identity, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetServerPort() string
	GetStoreDriver() string
	GetDatabaseString() string
	GetMigrationsPath() string
	GetMongoURI() string
	GetMongoDatabase() string
	GetRedisAddr() string
	GetCacheTTL() time.Duration
	GetJWTSecret() string
	GetTokenTTL() time.Duration
	GetAdminCredentials() (string, string)
	RequireSource() bool
	RequireManufacturer() bool
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type MongoDBProvider interface {
	Database() *mongo.Database
	Close(ctx context.Context) error
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

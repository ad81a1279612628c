package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"inventory/providers"
	"inventory/providers/configprovider"
	"inventory/providers/databaseprovider"
	"inventory/providers/loggerProvider"
	"inventory/providers/middlewareprovider"
	"inventory/providers/redisprovider"
	"inventory/serviceprovider/auth"
	hardwareservice "inventory/services/hardware"
	userservice "inventory/services/user"
)

type Server struct {
	Config          providers.ConfigProvider
	Logger          providers.ZapLoggerProvider
	DB              providers.DBProvider
	Mongo           providers.MongoDBProvider
	Redis           providers.RedisProvider
	Middleware      providers.AuthMiddlewareService
	UserHandler     *userservice.UserHandler
	HardwareHandler *hardwareservice.HardwareHandler
	httpServer      *http.Server
}

func ServerInit() *Server {
	logger := loggerProvider.NewLogProvider()
	logger.InitLogger()
	log := logger.GetLogger()

	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	srv := &Server{Config: cfg, Logger: logger}

	var (
		userRepo     userservice.UserRepository
		hardwareRepo hardwareservice.HardwareRepository
	)
	switch cfg.GetStoreDriver() {
	case "postgres":
		db, err := databaseprovider.NewDBProvider(cfg.GetDatabaseString(), cfg.GetMigrationsPath(), logger)
		if err != nil {
			log.Fatal("failed to prepare postgres", zap.Error(err))
		}
		srv.DB = db
		userRepo = userservice.NewUserRepository(db.DB(), logger)
		hardwareRepo = hardwareservice.NewHardwareRepository(db.DB())
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		mongoDB, err := databaseprovider.NewMongoProvider(ctx, cfg.GetMongoURI(), cfg.GetMongoDatabase(), logger)
		if err != nil {
			log.Fatal("failed to prepare mongodb", zap.Error(err))
		}
		srv.Mongo = mongoDB
		mongoUsers := userservice.NewMongoUserRepository(mongoDB.Database().Collection(userservice.UsersCollection))
		mongoHardware := hardwareservice.NewMongoHardwareRepository(mongoDB.Database().Collection(hardwareservice.HardwareCollection))

		if err := mongoUsers.EnsureIndexes(ctx); err != nil {
			log.Fatal("failed to prepare user collection", zap.Error(err))
		}
		if err := mongoHardware.EnsureIndexes(ctx); err != nil {
			log.Fatal("failed to prepare hardware collection", zap.Error(err))
		}
		userRepo = mongoUsers
		hardwareRepo = mongoHardware
	default:
		log.Warn("using in-memory store, data is lost on restart")
		userRepo = userservice.NewMemoryUserRepository()
		hardwareRepo = hardwareservice.NewMemoryHardwareRepository()
	}

	if addr := cfg.GetRedisAddr(); addr != "" {
		redis := redisprovider.NewRedisProvider(addr)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := redis.Ping(ctx); err != nil {
			log.Warn("redis unavailable, listing cache disabled", zap.String("addr", addr), zap.Error(err))
			_ = redis.Close()
		} else {
			log.Info("connected to redis", zap.String("addr", addr))
			srv.Redis = redis
		}
	}

	if cfg.GetJWTSecret() == "" {
		log.Fatal("SECRET_KEY must be set")
	}
	tokens := auth.NewJWTService(cfg.GetJWTSecret(), cfg.GetTokenTTL())
	srv.Middleware = middlewareprovider.NewAuthMiddlewareService(tokens)

	adminUser, adminPassword := cfg.GetAdminCredentials()
	userService := userservice.NewUserService(userRepo, tokens, logger, userservice.AdminCredentials{
		Username: adminUser,
		Password: adminPassword,
	})
	hardwareService := hardwareservice.NewHardwareService(hardwareRepo, userRepo, srv.Redis, cfg.GetCacheTTL(), logger, hardwareservice.ValidationPolicy{
		RequireSource:       cfg.RequireSource(),
		RequireManufacturer: cfg.RequireManufacturer(),
	})

	srv.UserHandler = userservice.NewUserHandler(userService, srv.Middleware)
	srv.HardwareHandler = hardwareservice.NewHardwareHandler(hardwareService, srv.Middleware)
	return srv
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr), zap.String("store", s.Config.GetStoreDriver()))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	log := s.Logger.GetLogger()
	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error("error shutting down server", zap.Error(err))
		}
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			log.Error("error closing DB", zap.Error(err))
		}
	}
	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			log.Error("error closing MongoDB", zap.Error(err))
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Error("error closing redis", zap.Error(err))
		}
	}

	log.Info("server shutdown complete")
	s.Logger.SyncLogger()
}

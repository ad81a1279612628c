package loggerProvider

import (
	"log"

	"go.uber.org/zap"

	"inventory/providers"
)

type LogProvider struct {
	logger *zap.Logger
}

func NewLogProvider() providers.ZapLoggerProvider {
	return &LogProvider{}
}

// NewNopLogProvider is used by tests and tools that want no log output.
func NewNopLogProvider() providers.ZapLoggerProvider {
	return &LogProvider{logger: zap.NewNop()}
}

func (l *LogProvider) InitLogger() {
	var err error
	l.logger, err = zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	zap.ReplaceGlobals(l.logger)
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

func (l *LogProvider) GetLogger() *zap.Logger {
	if l.logger == nil {
		return zap.L()
	}
	return l.logger
}

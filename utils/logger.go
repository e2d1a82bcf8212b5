package utils

import (
	"log"

	"nestcare/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(configuredLevel())

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(Logger)
}

// configuredLevel parses LOG_LEVEL, defaulting to info in production and
// debug everywhere else.
func configuredLevel() zapcore.Level {
	if config.AppConfig.LogLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(config.AppConfig.LogLevel)); err == nil {
			return level
		}
	}
	if config.IsProduction() {
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

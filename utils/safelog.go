// utils/safelog.go
// ============================================================================
// SAFE LOGGING - masks identifiers in production
// ============================================================================
// Structured logging on top of zap. In production build and user ids are
// shortened so logs cannot be joined back to a person.
// ============================================================================

package utils

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

var (
	// IsProduction switches zap to the JSON production encoder and turns on
	// id masking.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	logger     *zap.Logger
	loggerOnce sync.Once
)

func logLevel() zapcore.Level {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger returns the process-wide zap logger, building it on first use.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		cfg := zap.NewDevelopmentConfig()
		if IsProduction {
			cfg = zap.NewProductionConfig()
		}
		cfg.Level = zap.NewAtomicLevelAt(logLevel())
		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	})
	return logger
}

// SetLogger replaces the process logger (tests use zap's observer core).
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	logger = l
}

// ============================================================================
// MASKING
// ============================================================================

var uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// MaskString shortens every UUID found in input.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}
	return uuidRegex.ReplaceAllStringFunc(input, func(id string) string {
		return id[:8] + "..."
	})
}

// MaskID keeps the first 8 characters of an id.
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

// ============================================================================
// LEVEL HELPERS
// ============================================================================

func SafeDebug(format string, args ...interface{}) {
	Logger().Debug(MaskString(fmt.Sprintf(format, args...)))
}

func SafeInfo(format string, args ...interface{}) {
	Logger().Info(MaskString(fmt.Sprintf(format, args...)))
}

func SafeWarn(format string, args ...interface{}) {
	Logger().Warn(MaskString(fmt.Sprintf(format, args...)))
}

func SafeError(format string, args ...interface{}) {
	Logger().Error(MaskString(fmt.Sprintf(format, args...)))
}

// ============================================================================
// DOMAIN LOGGERS
// ============================================================================

// LogBuildAction records a change to a stored build.
func LogBuildAction(action string, buildID string, userID string) {
	Logger().Info("[Builds] "+action,
		zap.String("build_id", MaskID(buildID)),
		zap.String("user_id", MaskID(userID)),
	)
}

// LogEvaluation records the outcome of one evaluation without part details.
func LogEvaluation(source string, verdict string, issues int, upgrades int) {
	Logger().Info("[Advisor] evaluation",
		zap.String("source", source),
		zap.String("verdict", verdict),
		zap.Int("issues", issues),
		zap.Int("upgrades", upgrades),
	)
}

// LogAPIRequest records one HTTP request.
func LogAPIRequest(method string, path string, userID string, statusCode int, duration string) {
	Logger().Info("[API] "+method+" "+MaskString(path),
		zap.String("user_id", MaskID(userID)),
		zap.Int("status", statusCode),
		zap.String("duration", duration),
	)
}

// LogWebSocket records a websocket session event.
func LogWebSocket(action string, buildID string) {
	Logger().Info("[WS] "+action, zap.String("build_id", MaskID(buildID)))
}

// GetEnvMode returns "production" or "development".
func GetEnvMode() string {
	if IsProduction {
		return "production"
	}
	return "development"
}

// LogStartup prints the startup banner.
func LogStartup(appName string, version string, port string) {
	Logger().Info("🚀 "+appName+" starting",
		zap.String("version", version),
		zap.String("mode", GetEnvMode()),
		zap.String("port", port),
		zap.String("log_level", logLevel().String()),
	)
}

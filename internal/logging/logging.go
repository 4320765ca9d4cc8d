// pattern: Imperative Shell

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds configuration for the log manager.
type Config struct {
	FilePath   string // Path to log file
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Max number of old log files to keep
	MaxAgeDays int    // Max days to keep old log files
	Level      string // Minimum file log level (debug, info, warn, error)
	Debug      bool   // Also mirror records to stderr at debug level
}

// Manager owns the shared zap core and hands out scoped loggers.
type Manager struct {
	base       *zap.Logger
	fileWriter *lumberjack.Logger
	loggers    map[string]*zap.SugaredLogger
	mu         sync.RWMutex
}

// NewManager creates a log manager writing JSON records to a rotating file
// and, when cfg.Debug is set, human-readable records to stderr. Stderr output
// is otherwise reserved for single-line user-facing messages.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("FilePath is required")
	}

	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 5
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.EpochTimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(fileWriter),
		level,
	)

	core := fileCore
	if cfg.Debug {
		consoleCfg := zap.NewDevelopmentEncoderConfig()
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.AddSync(os.Stderr),
			zapcore.DebugLevel,
		)
		core = zapcore.NewTee(fileCore, consoleCore)
	}

	return &Manager{
		base:       zap.New(core),
		fileWriter: fileWriter,
		loggers:    make(map[string]*zap.SugaredLogger),
	}, nil
}

// For returns a logger named for the given scope (e.g. "discover", "sink").
// Loggers are cached and reused for the same scope.
func (m *Manager) For(scope string) *zap.SugaredLogger {
	m.mu.RLock()
	if logger, ok := m.loggers[scope]; ok {
		m.mu.RUnlock()
		return logger
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if logger, ok := m.loggers[scope]; ok {
		return logger
	}

	logger := m.base.Named(scope).Sugar()
	m.loggers[scope] = logger
	return logger
}

// Sync flushes all buffered records.
func (m *Manager) Sync() error {
	return m.base.Sync()
}

// Close syncs and closes the file writer.
func (m *Manager) Close() error {
	_ = m.Sync()
	return m.fileWriter.Close()
}

// Nop returns a logger that discards everything, for components that are
// constructed without a manager (tests, mostly).
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

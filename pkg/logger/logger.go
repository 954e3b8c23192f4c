package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging across the glossary packages.
const (
	FieldComponent = "component"
	FieldCount     = "count"
	FieldCategory  = "category"
	FieldTermID    = "term_id"
	FieldRelatedID = "related_id"
	FieldKeyword   = "keyword"
	FieldPositions = "positions"
	FieldSource    = "source"
	FieldSelection = "selection"
	FieldError     = "error"
)

// Logger is the process-wide logger. It starts as a no-op so packages can log
// before Initialize runs (and in tests).
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Options controls how Initialize builds the logger.
type Options struct {
	// JSON selects the production JSON encoder instead of the console encoder.
	JSON bool
	// Level is a zap level name (debug, info, warn, error). Empty means info.
	Level string
	// OutputPaths overrides where log lines go. Defaults to stderr.
	// The TUI points this at a file because bubbletea owns the terminal.
	OutputPaths []string
}

// Initialize replaces the global logger according to opts.
func Initialize(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	if opts.JSON {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
		// Colour escapes make no sense in a file.
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Discard resets the global logger to a no-op.
func Discard() {
	Logger = zap.NewNop().Sugar()
}

// ParseLevel maps a level name to a zapcore.Level. Empty defaults to info.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel, err
	}
	return level, nil
}

// Named returns a child of the global logger tagged with a component field.
func Named(component string) *zap.SugaredLogger {
	return Logger.With(FieldComponent, component)
}

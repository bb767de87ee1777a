package xzap

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogConf struct {
	Level string `toml:"level" mapstructure:"level" json:"level"`
	Mode  string `toml:"mode" mapstructure:"mode" json:"mode"` // console | file
	Path  string `toml:"path" mapstructure:"path" json:"path"`
}

var global = zap.NewNop()

// SetUp builds the process-wide logger. Before SetUp is called the package
// logs to a no-op logger, which keeps library code and tests quiet.
func SetUp(c LogConf) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.Set(c.Level); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)
	if c.Mode == "file" && c.Path != "" {
		f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		sink = zapcore.AddSync(f)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	global = zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(global)
	return global, nil
}

// Logger is a thin wrapper carrying the request context.
type Logger struct {
	l *zap.Logger
}

func WithContext(_ context.Context) *Logger {
	return &Logger{l: global}
}

func (x *Logger) Info(msg string, fields ...zap.Field) {
	x.l.Info(msg, fields...)
}

func (x *Logger) Warn(msg string, fields ...zap.Field) {
	x.l.Warn(msg, fields...)
}

func (x *Logger) Error(msg string, fields ...zap.Field) {
	x.l.Error(msg, fields...)
}

func (x *Logger) Infof(format string, args ...interface{}) {
	x.l.Sugar().Infof(format, args...)
}

func (x *Logger) Errorf(format string, args ...interface{}) {
	x.l.Sugar().Errorf(format, args...)
}

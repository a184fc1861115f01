package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode != ModeProduction {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

// Info-style methods treat arg[0] as the message and the rest as key/value pairs
// when arg[0] is a string, matching the call sites in pkg/llmprovider.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Debugw, s.Debug, arg)
}

func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Infow, s.Info, arg)
}

func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Warnw, s.Warn, arg)
}

func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Errorw, s.Error, arg)
}

func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.DPanicw, s.DPanic, arg)
}

func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Panicw, s.Panic, arg)
}

func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Fatalw, s.Fatal, arg)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

func logw(kv func(string, ...any), plain func(...any), arg []any) {
	if len(arg) > 1 && len(arg)%2 == 1 {
		if msg, ok := arg[0].(string); ok {
			kv(msg, arg[1:]...)
			return
		}
	}
	plain(arg...)
}

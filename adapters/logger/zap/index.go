package zap

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const callerSkip = 1

type St struct {
	l  *zap.Logger
	sl *zap.SugaredLogger
}

func New(level string, dev bool) *St {
	var cfg zap.Config

	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level.SetLevel(ParseLevel(level))
	}

	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return newFromLogger(l)
}

func newFromLogger(l *zap.Logger) *St {
	return &St{
		l:  l,
		sl: l.Sugar(),
	}
}

// ParseLevel maps a level name to a zap level, "warn" for unknown names.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "error":
		return zap.ErrorLevel
	case "warn":
		return zap.WarnLevel
	case "info":
		return zap.InfoLevel
	case "debug":
		return zap.DebugLevel
	default:
		return zap.WarnLevel
	}
}

func (o *St) Fatalw(msg string, err any, args ...any) {
	args = append(args, "error", err)
	o.sl.Fatalw(msg, args...)
}

func (o *St) Errorw(msg string, err any, args ...any) {
	args = append(args, "error", err)
	o.sl.Errorw(msg, args...)
}

func (o *St) Warnw(msg string, args ...any) {
	o.sl.Warnw(msg, args...)
}

func (o *St) Infow(msg string, args ...any) {
	o.sl.Infow(msg, args...)
}

func (o *St) Sync() {
	if err := o.sl.Sync(); err != nil {
		log.Println("Fail to sync zap-logger", err)
	}
}

package logging

import (
	"go.uber.org/zap"
)

//go:generate mockgen -destination=../../../gen/mocks/logging/mock_logging.go -package=mocks . Logger

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

// ZapLogger adapts a sugared zap logger to Logger; args are key/value pairs.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

func NewZapLogger(development bool) (*ZapLogger, error) {
	var (
		base *zap.Logger
		err  error
	)

	if development {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return WrapZap(base), nil
}

func WrapZap(base *zap.Logger) *ZapLogger {
	return &ZapLogger{
		sugar: base.Sugar(),
	}
}

var NopLogger = WrapZap(zap.NewNop())

func (l *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{
		sugar: l.sugar.Named(name),
	}
}

func (l *ZapLogger) Info(message string, args ...any) {
	l.sugar.Infow(message, args...)
}

func (l *ZapLogger) Warn(message string, args ...any) {
	l.sugar.Warnw(message, args...)
}

func (l *ZapLogger) Error(message string, args ...any) {
	l.sugar.Errorw(message, args...)
}

func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

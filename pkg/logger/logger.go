package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New instancia um logger zap de produção com saída JSON estruturada.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Must entra em pânico caso o logger não possa ser criado.
func Must(log *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return log
}

// Named devolve um logger filho com o nome do componente.
func Named(base *zap.Logger, componente string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(componente)
}

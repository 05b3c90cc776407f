package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger at the given level ("debug", "info", "warn", "error").
// An unknown level falls back to info.
func New(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	return config.Build(
		zap.Fields(
			zap.String("service", "mentoria"),
		),
	)
}

// MaskEmail hides the local part of an email address for logging.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	switch {
	case at < 0:
		return "***"
	case at == 0:
		return "***" + email
	default:
		return email[:1] + "***" + email[at:]
	}
}

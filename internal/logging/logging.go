// README: Structured logging setup shared by the API server and the catalog loader.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger = zap.NewNop()
	Sugar  = Logger.Sugar()
)

// Initialize builds the global logger at the given level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func Initialize(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		lvl,
	)

	Logger = zap.New(core, zap.AddCaller())
	Sugar = Logger.Sugar()
}

func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}

func Sync() {
	_ = Logger.Sync()
}

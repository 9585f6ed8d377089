package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// setupLogger writes development logs at debug level when debug is set.
// Otherwise only errors are logged, as JSON, so normal output stays clean.
func setupLogger(debug bool, w io.Writer) *zap.Logger {
	if debug {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)
		return zap.New(core, zap.Development(), zap.AddCaller())
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.ErrorLevel,
	)
	return zap.New(core)
}

package log

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WithConsoleEffectHandler registers a log handler writing human-readable
// entries at level and above to w. Writes to w are serialized.
func WithConsoleEffectHandler(
	ctx context.Context,
	w io.Writer,
	level zapcore.LevelEnabler,
) (context.Context, func() context.Context) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return WithZapEffectHandler(ctx, 1, zap.New(consoleCore))
}

// WithTestEffectHandler is WithConsoleEffectHandler on stdout at debug level,
// so Log entries of effects under test show up in verbose test output.
func WithTestEffectHandler(
	ctx context.Context,
) (context.Context, func() context.Context) {
	return WithConsoleEffectHandler(ctx, os.Stdout, zap.DebugLevel)
}

package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Service  string
	Env      string // dev|test use the development encoder config
	Level    string // debug|info|warn|error
	Encoding string // json|console
}

// New builds a *zap.Logger without touching the globals.
func New(cfg Config, opts ...zap.Option) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var encCfg zapcore.EncoderConfig
	switch strings.ToLower(cfg.Env) {
	case "dev", "test":
		encCfg = zap.NewDevelopmentEncoderConfig()
	default:
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	var encoder zapcore.Encoder
	if strings.ToLower(cfg.Encoding) == "console" {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level))

	allOpts := append([]zap.Option{
		zap.AddCaller(),
		zap.Fields(zap.String("service", cfg.Service)),
	}, opts...)
	return zap.New(core, allOpts...), nil
}

// ForRequest tags base with the request id set by the requestid middleware.
func ForRequest(c *fiber.Ctx, base *zap.Logger) *zap.Logger {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return base.With(zap.String("request_id", id))
	}
	return base
}

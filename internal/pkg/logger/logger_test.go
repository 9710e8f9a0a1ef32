package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Service: "svc", Level: "loud"})
	assert.Error(t, err)
}

func TestNewBuildsLogger(t *testing.T) {
	for _, env := range []string{"dev", "prod"} {
		l, err := New(Config{Service: "svc", Env: env, Level: "debug", Encoding: "console"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	}

	l, err := New(Config{Service: "svc", Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
}

func TestForRequestAddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("requestid", "req-42")
		ForRequest(c, base).Info("hello")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}

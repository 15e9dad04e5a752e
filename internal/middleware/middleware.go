package middleware

import (
	"errors"
	"io"
	"strconv"
	"time"

	"recipe-catalog/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
		LoggerMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
		LimiterMiddleware() fiber.Handler
		MetricsMiddleware() fiber.Handler
	}

	Config struct {
		AllowOrigins string
		// RateLimitMax is requests per second per client; 0 disables the limiter.
		RateLimitMax int
		LogOutput    io.Writer
	}

	middleware struct {
		cfg Config
	}
)

func NewMiddleware(cfg Config) Middleware {
	if cfg.AllowOrigins == "" {
		cfg.AllowOrigins = "*"
	}
	return &middleware{cfg: cfg}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

func (m *middleware) LoggerMiddleware() fiber.Handler {
	cfg := logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path} ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}
	if m.cfg.LogOutput != nil {
		cfg.Output = m.cfg.LogOutput
	}
	return logger.New(cfg)
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New()
}

func (m *middleware) LimiterMiddleware() fiber.Handler {
	if m.cfg.RateLimitMax <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        m.cfg.RateLimitMax,
		Expiration: 1 * time.Second,
	})
}

// MetricsMiddleware records RED metrics labelled by route pattern, not raw path.
func (m *middleware) MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		path := c.Route().Path
		method := c.Method()
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func fields(tags []string, c *fiber.Ctx, latency time.Duration) log.Fields {
	f := make(log.Fields, len(tags))
	for _, tag := range tags {
		switch tag {
		case TagMethod:
			f[TagMethod] = c.Method()
		case TagPath:
			f[TagPath] = c.Path()
		case TagStatus:
			f[TagStatus] = c.Response().StatusCode()
		case TagLatency:
			f[TagLatency] = latency.String()
		case TagIP:
			f[TagIP] = c.IP()
		case RequestID:
			f[RequestID] = c.GetRespHeader(fiber.HeaderXRequestID)
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if c.Method() == fiber.MethodOptions {
			return err
		}
		latency := time.Since(start)

		logger := cfg.Logger
		if logger == nil {
			logger = log.StandardLogger()
		}
		entry := logger.WithFields(fields(cfg.Tags, c, latency))
		if c.Response().StatusCode() >= fiber.StatusMultipleChoices {
			entry.Warn("api request")
		} else {
			entry.Info("api request")
		}
		return err
	}
}

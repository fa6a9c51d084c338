package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const maxLoggedBodyBytes = 512

// RequestLogMiddleware writes one line before every endpoint invocation
// (method, path, caller address, request arguments) and one after it
// (status, latency). It observes only: it never mutates the request and
// never fails it.
type RequestLogMiddleware struct {
	logger *log.Logger
}

func NewRequestLogMiddleware(logger *log.Logger) *RequestLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &RequestLogMiddleware{logger: logger}
}

func (m *RequestLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		ip := ClientIP(c.Get("X-Forwarded-For"), c.IP())
		method := c.Method()
		path := c.OriginalURL()

		m.logf(
			"HTTP request | rid=%s ip=%s method=%s path=%s args=%q",
			rid, ip, method, path, bodySnippet(c.Body()),
		)

		err := c.Next()

		m.logf(
			"HTTP done | rid=%s ip=%s method=%s path=%s status=%d latency=%s",
			rid, ip, method, path, c.Response().StatusCode(), time.Since(start),
		)

		return err
	}
}

func (m *RequestLogMiddleware) logf(format string, args ...any) {
	if m == nil || m.logger == nil {
		return
	}
	m.logger.Printf(format, args...)
}

// ClientIP picks the caller address: the first X-Forwarded-For entry when
// present, the peer address otherwise. The IPv6 loopback is reported in
// its IPv4 form.
func ClientIP(forwardedFor, remote string) string {
	ip := strings.TrimSpace(forwardedFor)
	if i := strings.IndexByte(ip, ','); i >= 0 {
		ip = strings.TrimSpace(ip[:i])
	}
	if ip == "" {
		ip = strings.TrimSpace(remote)
	}
	if ip == "::1" || ip == "0:0:0:0:0:0:0:1" {
		ip = "127.0.0.1"
	}
	return ip
}

func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	s := string(body)
	if len(s) > maxLoggedBodyBytes {
		s = s[:maxLoggedBodyBytes] + "..."
	}
	return s
}

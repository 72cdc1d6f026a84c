package logging

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries the request correlation id in both directions.
const HeaderRequestID = "X-Request-Id"

const maxRequestIDLength = 255

// Middleware derives every tag from the incoming request and stores a
// logger carrying them, in order, in the request context.
func Middleware(logger zerolog.Logger, tags []appconfig.LogTag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.With()
			for _, tag := range tags {
				switch tag {
				case appconfig.LogTagSubdomain:
					ctx = ctx.Str(string(tag), Subdomain(r.Host))
				case appconfig.LogTagRequestID:
					id := RequestID(r)
					w.Header().Set(HeaderRequestID, id)
					ctx = ctx.Str(string(tag), id)
				}
			}
			requestLogger := ctx.Logger()

			next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(r.Context())))
		})
	}
}

// FromContext returns the request logger, or a disabled one outside of
// Middleware.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// Subdomain returns every label of host except the last two, so
// "eu.api.example.com" gives "eu.api". IPs and short hosts have none.
func Subdomain(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")
	if host == "" || net.ParseIP(host) != nil {
		return ""
	}

	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}
	return strings.Join(labels[:len(labels)-2], ".")
}

// RequestID reuses a sane client-provided id, or generates a new one.
func RequestID(r *http.Request) string {
	if id := sanitizeRequestID(r.Header.Get(HeaderRequestID)); id != "" {
		return id
	}
	return uuid.New().String()
}

func sanitizeRequestID(raw string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '@':
			return r
		default:
			return -1
		}
	}, raw)
	if len(id) > maxRequestIDLength {
		id = id[:maxRequestIDLength]
	}
	return id
}

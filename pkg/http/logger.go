package http

import (
	"go-weather/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {}

// ZapLogger writes outbound calls to the application logger. Response bodies are
// only logged at debug level.
type ZapLogger struct {
	Client string
}

// NewZapLogger creates a HTTPLogger tagged with the given client name
func NewZapLogger(client string) *ZapLogger {
	return &ZapLogger{Client: client}
}

func (l *ZapLogger) LogRequest(method, url string, _ map[string]string) {
	log.Debug("http request",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64) {
	log.Info("http response",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
	log.Debug("http response body", zap.String("client", l.Client), zap.String("body", responseBody))
}

func (l *ZapLogger) LogResponseError(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Error("http response error",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", responseBody),
		zap.Error(err),
	)
}

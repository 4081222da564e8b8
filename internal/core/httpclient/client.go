package httpclient

import (
	"net/http"
	"time"

	"gotur/internal/core/logger"

	"go.uber.org/zap"
)

// UserAgent is sent on every outgoing request that does not set its own.
const UserAgent = "gotur/1.0"

// LoggingRoundTripper logs outgoing requests and stamps the user agent.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	log := logger.Named("httpclient").With(
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}

	start := time.Now()
	log.Debug("HTTP Request Started")

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

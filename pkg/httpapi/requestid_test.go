package httpapi_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/aesthetic/pkg/httpapi"
	"github.com/dmitrymomot/aesthetic/pkg/logger"
)

func TestRequestIDExtractor(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithContextExtractors(httpapi.RequestIDExtractor()),
	)

	h := httpapi.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", httpapi.RequestIDFromContext(r.Context()))
		log.InfoContext(r.Context(), "inside")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httpapi.RequestIDHeader, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	log.Log(context.Background(), slog.LevelInfo, "outside")
	assert.NotContains(t, buf.String(), "request_id")
	assert.Empty(t, httpapi.RequestIDFromContext(context.Background()))
}

package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/whiterosespeakers/wrs-backend/internal/metrics"
)

const headerCorrelationID = "x-correlation-id"

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// observabilityMiddleware gives each request a correlation id, a contextual
// logger, a completion log line and a metrics sample.
func observabilityMiddleware(logger zerolog.Logger, recorder metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			corrID := r.Header.Get(headerCorrelationID)
			if corrID == "" {
				corrID = uuid.NewString()
			}
			w.Header().Set(headerCorrelationID, corrID)

			reqLogger := logger.With().Str("correlation_id", corrID).Logger()
			ctx := reqLogger.WithContext(r.Context())

			wrapper := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapper, r.WithContext(ctx))

			latency := time.Since(start)
			reqLogger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Int64("latency_ms", latency.Milliseconds()).
				Msg("request completed")

			recorder.Request(r.Method, r.URL.Path, wrapper.statusCode, latency)
		})
	}
}

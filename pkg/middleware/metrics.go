package middleware

import (
	"net/http"
	"strconv"

	"tourism-booking/internal/metrics"
)

// Metrics middleware counts requests per method and status code
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			metrics.IncHTTP(r.Method, strconv.Itoa(rw.statusCode))
		})
	}
}

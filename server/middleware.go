package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := uuid.New()
		w.Header().Set("X-Request-Id", requestId.String())

		start := time.Now()
		next.ServeHTTP(w, r)

		log.Debug().
			Str("requestId", requestId.String()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("api request handled")
	})
}

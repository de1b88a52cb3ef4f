package middleware

import (
	"net/http"
	"time"
)

// RequestRecorder recebe a contagem e a latência de cada requisição
type RequestRecorder interface {
	RecordRequest(method, route string, status int, latency time.Duration)
}

// Metrics registra a requisição com o padrão da rota, não com o caminho concreto
func Metrics(recorder RequestRecorder, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(rw, r)

			recorder.RecordRequest(r.Method, route, rw.status, time.Since(start))
		})
	}
}

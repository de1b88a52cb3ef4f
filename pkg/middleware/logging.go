package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// RequestIDHeader carrega o ID de correlação entre cliente, API e jobs
const RequestIDHeader = "X-Request-ID"

const slowRequest = 500 * time.Millisecond

// LoggingMiddleware registra início e fim de cada requisição. O ID de correlação
// vem do cabeçalho X-Request-ID quando o cliente envia um e volta na resposta.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := requestCorrelation(r)
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, correlationID)

			rw := newStatusRecorder(w)
			start := time.Now()

			fields := log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			}
			if !log.IsDevelopment() {
				fields["remote_addr"] = r.RemoteAddr
				fields["query"] = r.URL.RawQuery
				fields["user_agent"] = r.UserAgent()
				fields["content_length"] = r.ContentLength
			}
			log.ForContext(ctx).WithFields(fields).Info("HTTP: requisição iniciada")

			next.ServeHTTP(rw, r)

			elapsed := time.Since(start)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.status,
				"duration_ms": elapsed.Milliseconds(),
			})

			msg := fmt.Sprintf("HTTP: requisição finalizada em %s", formatDuration(elapsed))
			switch {
			case rw.status >= http.StatusInternalServerError:
				logger.Error(msg)
			case rw.status >= http.StatusBadRequest:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequest {
				logger.Warnf("HTTP: requisição lenta (%dms)", elapsed.Milliseconds())
			}
		})
	}
}

func requestCorrelation(r *http.Request) (context.Context, string) {
	if id := r.Header.Get(RequestIDHeader); id != "" && len(id) <= 128 {
		return log.ContextWithCorrelationID(r.Context(), id), id
	}
	return log.WithCorrelationID(r.Context())
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status enviado e se o cabeçalho já foi escrito
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rw *statusRecorder) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.status = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// LogPanicMiddleware recupera panics dos handlers e responde 500 no formato padrão de erro.
// Se a resposta já começou a ser enviada, apenas registra o erro.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newStatusRecorder(w)

			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				ctx := r.Context()
				if id := rw.Header().Get(RequestIDHeader); id != "" {
					ctx = log.ContextWithCorrelationID(ctx, id)
				}

				logger := log.ForContext(ctx).WithFields(log.Fields{
					"error":  fmt.Sprint(recovered),
					"method": r.Method,
					"path":   r.URL.Path,
				})
				logger.Error("HTTP: panic na aplicação")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n===================\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("HTTP: stack trace do panic")
				}

				if rw.wroteHeader {
					return
				}
				apiErrors.WriteError(rw, apiErrors.ErrInternalServer, "Internal server error", nil)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// middleware — обёртки HTTP-конвейера ticketing-backend: recover, request id,
// логирование, метрики, таймаут и аутентификация по access-cookie.
package middleware

import (
	"net/http"
)

// Middleware — обычный net/http мидлвар, совместимый с chi.Use.
type Middleware func(http.Handler) http.Handler

// Chain оборачивает h мидлварами так, что первый в списке оказывается
// внешним (выполняется раньше остальных).
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusWriter перехватывает статус и число записанных байт для
// логирования и метрик; до первого Write статус считается 200.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

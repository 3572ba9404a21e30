package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает контекст с привязанным логгером. Мидлвар логирования
// кладёт сюда экземпляр, уже обогащённый request_id, чтобы сервисный слой
// писал записи с тем же идентификатором запроса.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From извлекает логгер, положенный Into; вне HTTP-запроса (janitor,
// bootstrap) возвращает slog.Default().
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

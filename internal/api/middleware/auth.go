package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"

	// HeaderUserID проставляется API-шлюзом после проверки сессии
	HeaderUserID = "X-User-ID"
	// HeaderUserRole проставляется API-шлюзом; "admin" открывает админские маршруты
	HeaderUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth требует аутентифицированного пользователя.
// Идентификация выполняется шлюзом, сервис доверяет заголовкам.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - missing or invalid %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, isAdminKey, r.Header.Get(HeaderUserRole) == roleAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly пропускает только администраторов. Применяется после Auth.
func AdminOnly(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdminFromContext(r.Context()) {
				logger.Warn("%s %s - admin access required for user=%d",
					r.Method, r.URL.Path, UserIDFromContext(r.Context()))
				handlers.RespondForbidden(w, "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext возвращает ID пользователя, проставленный Auth.
// 0 означает неаутентифицированный запрос.
func UserIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id
	}
	return 0
}

// IsAdminFromContext возвращает признак администратора
func IsAdminFromContext(ctx context.Context) bool {
	if isAdmin, ok := ctx.Value(isAdminKey).(bool); ok {
		return isAdmin
	}
	return false
}

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ZenKakzi/scholar-book-flow/internal/jwt"
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
	"github.com/ZenKakzi/scholar-book-flow/internal/session"
)

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriterWrapper(w http.ResponseWriter) *responseWriterWrapper {
	return &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}
}

func (w *responseWriterWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (a *Api) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := newResponseWriterWrapper(w)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		a.logger.Info(
			"request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.String()),
			slog.Int("status", ww.statusCode),
			slog.String("duration", duration.String()),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)
	})
}

// Authenticate resolves the access token cookie to a roster user and puts
// it on the request context.
func (a *Api) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := r.Cookie("access_token")

		if err != nil {
			a.logger.Warn("access token cookie not found", "status", "unauthenticated")
			respondWithError(w, http.StatusUnauthorized, fmt.Errorf("access token cookie not found"))
			return
		}

		id, err := jwt.DecodeJWTToken(token.Value, a.config.Jwt_secret)

		if err != nil {
			a.logger.Warn(err.Error(), "status", "unauthenticated")
			respondWithError(w, http.StatusUnauthorized, err)
			return
		}

		user, err := a.sessions.UserById(id)

		if err != nil {
			if err == session.ErrUserNotFound {
				a.logger.Warn(err.Error(), "service", "middleware")
				respondWithError(w, http.StatusUnauthorized, err)
				return
			}

			a.logger.Error(err.Error(), "service", "middleware")
			respondWithError(w, http.StatusInternalServerError, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), "user", user)))
	})
}

// RequireRole gates a route on the authenticated user's role.
func (a *Api) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value("user").(*models.User)

			if !ok {
				a.logger.Warn("no user on request context", "service", "middleware")
				respondWithError(w, http.StatusUnauthorized, fmt.Errorf("not authenticated"))
				return
			}

			if user.Role != role {
				a.logger.Warn("role check failed", "service", "middleware", "role", user.Role)
				respondWithError(w, http.StatusForbidden, fmt.Errorf("insufficient permissions"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package auth

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"
)

type ctxKey struct{}

type AuthenticateMiddleware struct {
	Secret []byte
}

func (m *AuthenticateMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := VerifyUser(r, m.Secret)
		if err != nil {
			logger.Debugf("Unauthenticated request to %s: %s", r.URL.Path, err.Error())
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), username)))
	})
}

func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ctxKey{}, username)
}

// GetAuthenticatedUser returns the username put there by AuthenticateMiddleware.
func GetAuthenticatedUser(req *http.Request) (string, bool) {
	username, ok := req.Context().Value(ctxKey{}).(string)
	return username, ok && username != ""
}

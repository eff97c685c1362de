package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// Authenticate проверяет Bearer-токен и кладет пользователя в контекст запроса
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			h.handleError(w, domain.ErrUnauthorized)
			return
		}

		userID, err := h.tokenService.Verify(token)
		if err != nil {
			h.handleError(w, err)
			return
		}

		user, err := h.userService.GetByID(r.Context(), userID)
		if err != nil {
			h.handleError(w, domain.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userContextKey).(*domain.User)
	return user
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, domain.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

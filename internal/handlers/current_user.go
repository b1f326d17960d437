package handlers

import (
	"context"
	"errors"
	"net/http"

	"AdminDashboard/internal/middleware"
	"AdminDashboard/internal/model"
	"AdminDashboard/internal/service"
)

type currentUserKey struct{}

// WithCurrentUser перечитывает пользователя из токена в базе.
// Роль берётся из базы, а не из claims: понижение и удаление действуют сразу.
// Удалённый пользователь остаётся анонимным, защищённые маршруты ответят 401.
func (h *UserHandler) WithCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		u, err := h.UserService.Get(r.Context(), p.PublicID)
		if errors.Is(err, service.ErrNotFound) {
			h.Logger.Debugw("token for missing user", "public_id", p.PublicID)
			next.ServeHTTP(w, r.WithContext(middleware.WithoutPrincipal(r.Context())))
			return
		}
		if err != nil {
			h.Logger.Errorw("load current user", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		ctx := middleware.WithPrincipal(r.Context(), middleware.Principal{
			UserID:   u.ID,
			PublicID: u.PublicID,
			Role:     u.Role,
		})
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, currentUserKey{}, u)))
	})
}

func currentUser(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(currentUserKey{}).(*model.User)
	return u, ok && u != nil
}

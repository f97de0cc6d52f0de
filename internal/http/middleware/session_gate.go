package middleware

import (
	"net/http"

	"github.com/agussaepos/saepos-cms/internal/client"
	apierrors "github.com/agussaepos/saepos-cms/internal/errors"
	"github.com/agussaepos/saepos-cms/internal/models"
)

// SessionState — срез состояния процессной сессии, нужный гейту.
// Реализуется session.Store.
type SessionState interface {
	Initialized() bool
	Session() models.Session
}

// SessionGate пускает запрос дальше только при живой сессии:
//   - стор ещё не гидратирован (ошибка на старте) -> 503 unavailable;
//   - сессии нет -> 401 session_expired, фронт уводит на форму логина.
//
// Навешивается на защищённые CMS-маршруты; /auth/* и служебные
// эндпойнты идут мимо гейта.
func SessionGate(state SessionState) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !state.Initialized() {
				apierrors.WriteError(w, r, client.ErrUnavailable)
				return
			}

			if !state.Session().Authenticated() {
				apierrors.WriteError(w, r, client.ErrSessionExpired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

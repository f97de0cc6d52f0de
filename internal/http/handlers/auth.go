package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/agussaepos/saepos-cms/internal/errors"
)

// loginRequest — тело POST /auth/login от фронта.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse — ответ GET /auth/session и POST /auth/login.
type sessionResponse struct {
	Authenticated   bool       `json:"authenticated"`
	User            any        `json:"user,omitempty"`
	AccessExpiresAt *time.Time `json:"access_expires_at,omitempty"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	if in.Email == "" || in.Password == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	user, err := h.Backend.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	sess := h.Sessions.Session()
	writeJSON(w, http.StatusOK, sessionResponse{
		Authenticated:   true,
		User:            user,
		AccessExpiresAt: expiryPtr(sess.AccessExpiresAt),
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Backend.Logout(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
}

// Session отдаёт текущее состояние сессии. Эндпойнт идёт мимо гейта:
// фронт опрашивает его и на незалогиненном шлюзе.
func (h *Handlers) Session(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Session()

	if !sess.Authenticated() {
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Authenticated:   true,
		User:            sess.User,
		AccessExpiresAt: expiryPtr(sess.AccessExpiresAt),
	})
}

func expiryPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

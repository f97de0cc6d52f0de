package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/agussaepos/saepos-cms/internal/models"
	"github.com/agussaepos/saepos-cms/internal/pkg/log"
	"github.com/agussaepos/saepos-cms/pkg/redact"
)

// loginRequest — тело POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginData — полезная нагрузка ответа /auth/login.
type loginData struct {
	User         *models.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

// logoutRequest — тело POST /auth/logout.
type logoutRequest struct {
	UserID int64 `json:"userId"`
}

// Login обменивает учётные данные на сессию.
//
// Идёт по голому транспорту: 401 здесь означает неверные учётные данные,
// а не истёкший токен — refresh-протокол не привлекается, состояние
// сессии при отказе не затрагивается.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	const op = "client.Login"

	lg := log.From(ctx)

	buf, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/auth/login", nil), bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID(ctx))

	resp, err := c.httpc.Do(req)
	if err != nil {
		lg.Warn("login_transport_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: %w", op, classifyBody(resp.StatusCode, data))
	}

	var out loginData
	if err := decodeData(op, data, &out); err != nil {
		return nil, err
	}

	if out.User == nil || out.Token == "" {
		return nil, fmt.Errorf("%s: malformed login response", op)
	}

	if err := c.store.SetAuth(ctx, out.User, out.Token, out.RefreshToken); err != nil {
		// Деградация до memory-only сессии: логин состоялся.
		lg.Warn("login_persist_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	lg.Info("login_ok",
		slog.String("op", op),
		slog.String("email", redact.Email(out.User.Email)),
		slog.Int64("user_id", out.User.ID),
	)

	return out.User, nil
}

// Logout завершает сессию.
//
// Сначала best-effort уведомляет backend (инвалидация серверной записи
// refresh-токена), затем безусловно чистит локальную сессию — независимо
// от исхода серверного вызова.
func (c *Client) Logout(ctx context.Context) error {
	const op = "client.Logout"

	sess := c.store.Session()

	if sess.Authenticated() {
		if err := c.notifyLogout(ctx, sess.User.ID, sess.AccessToken); err != nil {
			log.From(ctx).Warn("logout_upstream_failed",
				slog.String("op", op),
				slog.Int64("user_id", sess.User.ID),
				slog.String("err", err.Error()),
			)
		}
	}

	if err := c.store.Logout(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// notifyLogout — серверная инвалидация сессии. Ходит с текущим токеном,
// но без 401-ретрая: истёкший токен на логауте не повод для refresh.
func (c *Client) notifyLogout(ctx context.Context, userID int64, token string) error {
	const op = "client.notifyLogout"

	buf, err := json.Marshal(logoutRequest{UserID: userID})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/auth/logout", nil), bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", requestID(ctx))

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return fmt.Errorf("%s: %w", op, classifyBody(resp.StatusCode, data))
	}

	return nil
}

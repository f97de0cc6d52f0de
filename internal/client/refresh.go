package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/agussaepos/saepos-cms/internal/metrics"
	"github.com/agussaepos/saepos-cms/internal/pkg/log"
	"github.com/agussaepos/saepos-cms/pkg/redact"
)

// refreshRequest — тело обмена POST /auth/refresh.
type refreshRequest struct {
	UserID       int64  `json:"userId"`
	RefreshToken string `json:"refreshToken"`
}

// refreshData — полезная нагрузка ответа /auth/refresh.
type refreshData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// refreshAccessToken обменивает refresh-токен на новую пару и возвращает
// свежий access-токен.
//
// Гарантии:
//   - single-flight: конкурентные вызовы присоединяются к одному обмену
//     и получают один общий исход;
//   - прекондиция: без refresh-токена и пользователя обмен не стартует —
//     сессия сразу завершается, сетевого вызова нет;
//   - любой исход неудачи (сеть, не-2xx, битый ответ) завершает сессию
//     через Logout и отдаёт всем ожидающим ErrSessionExpired;
//   - обмен идёт по голому транспорту: access-токен не подставляется,
//     401-обработчик не участвует.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	const op = "client.refreshAccessToken"

	v, err, _ := c.sf.Do("token-refresh", func() (any, error) {
		// Перечитываем сессию под single-flight: к этому моменту её мог
		// обновить предыдущий обмен.
		sess := c.store.Session()

		if sess.RefreshToken == "" || sess.User == nil {
			metrics.TokenRefresh.WithLabelValues("precondition").Inc()
			_ = c.store.Logout(ctx)
			return nil, fmt.Errorf("%s: no refresh credentials: %w", op, ErrSessionExpired)
		}

		lg := log.From(ctx)

		pair, err := c.exchange(ctx, sess.User.ID, sess.RefreshToken)
		if err != nil {
			metrics.TokenRefresh.WithLabelValues("failed").Inc()

			lg.Warn("token_refresh_failed",
				slog.String("op", op),
				slog.Int64("user_id", sess.User.ID),
				slog.String("refresh_token", redact.Token()),
				slog.String("err", err.Error()),
			)

			_ = c.store.Logout(ctx)
			return nil, fmt.Errorf("%s: %w", op, ErrSessionExpired)
		}

		// Ротация: новая пара целиком замещает старую.
		if err := c.store.SetAuth(ctx, sess.User, pair.AccessToken, pair.RefreshToken); err != nil {
			// Персист не удался, но in-memory сессия обновлена — обмен успешен.
			lg.Warn("token_refresh_persist_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}

		metrics.TokenRefresh.WithLabelValues("ok").Inc()

		lg.Info("token_refreshed",
			slog.String("op", op),
			slog.Int64("user_id", sess.User.ID),
		)

		return pair.AccessToken, nil
	})

	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// exchange выполняет сам HTTP-обмен refresh-токена, без участия пайплайна.
func (c *Client) exchange(ctx context.Context, userID int64, refreshToken string) (*refreshData, error) {
	const op = "client.exchange"

	buf, err := json.Marshal(refreshRequest{UserID: userID, RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/auth/refresh", nil), bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID(ctx))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: %w", op, classifyBody(resp.StatusCode, data))
	}

	var out refreshData
	if err := decodeData(op, data, &out); err != nil {
		return nil, err
	}

	if out.AccessToken == "" || out.RefreshToken == "" {
		return nil, fmt.Errorf("%s: malformed refresh response", op)
	}

	return &out, nil
}

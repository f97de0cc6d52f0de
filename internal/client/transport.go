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
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/agussaepos/saepos-cms/internal/metrics"
	"github.com/agussaepos/saepos-cms/internal/pkg/log"
)

// envelope — конверт ответов backend API: {data: ...}.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// wireError — тело ошибки backend'а; формат не гарантирован, поэтому поля
// опциональны и используются только для диагностики.
type wireError struct {
	Message string `json:"message"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// call — единая точка аутентифицированных запросов.
//
// Алгоритм (ровно одна повторная попытка на логический запрос):
//  1. подставить текущий access-токен, если он есть;
//  2. выполнить запрос;
//  3. на 401 — присоединиться к refresh-обмену; при успехе повторить запрос
//     один раз с новым токеном; при неудаче вернуть исходный отказ
//     (сессия уже принудительно завершена refresh-протоколом);
//  4. любой другой статус вернуть как есть.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	const op = "client.call"

	token := c.store.AccessToken()

	status, data, err := c.attempt(ctx, method, path, query, body, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if status == http.StatusUnauthorized {
		newToken, rerr := c.refreshAccessToken(ctx)
		if rerr != nil {
			// Исходный 401 терминален: refresh не помог, сессия завершена.
			return fmt.Errorf("%s: %w", op, rerr)
		}

		// Помеченный как already-retried повтор: второй 401 дальше не ретраится.
		status, data, err = c.attempt(ctx, method, path, query, body, newToken)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if status < 200 || status >= 300 {
		return fmt.Errorf("%s: %w", op, classifyBody(status, data))
	}

	return decodeData(op, data, out)
}

// attempt — одна попытка запроса. Возвращает статус и тело; транспортные
// сбои (без HTTP-ответа) маппятся в ErrUnavailable.
func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body any, token string) (int, []byte, error) {
	const op = "client.attempt"

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: marshal body: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", requestID(ctx))

	start := time.Now()
	resp, err := c.httpc.Do(req)
	metrics.UpstreamDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(method, "error").Inc()

		log.From(ctx).Warn("upstream_transport_failed",
			slog.String("op", op),
			slog.String("method", method),
			slog.String("path", path),
			slog.String("err", err.Error()),
		)

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, err
		}

		return 0, nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.UpstreamRequests.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	return resp.StatusCode, data, nil
}

// maxResponseBytes — защитный потолок на тело ответа backend'а.
const maxResponseBytes = 8 << 20

// decodeData распаковывает конверт {data: ...} в out. out == nil —
// вызывающему тело не нужно.
func decodeData(op string, data []byte, out any) error {
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%s: decode envelope: %w", op, err)
	}

	if len(env.Data) == 0 {
		return fmt.Errorf("%s: empty data in envelope", op)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", op, err)
	}

	return nil
}

// classifyBody строит APIError из статуса и тела ошибки backend'а.
func classifyBody(status int, data []byte) error {
	var we wireError
	_ = json.Unmarshal(data, &we)

	code := we.Error.Code
	message := we.Error.Message
	if message == "" {
		message = we.Message
	}

	return newAPIError(status, code, message)
}

// requestID достаёт X-Request-Id из контекста (кладёт HTTP-middleware)
// или генерирует новый.
func requestID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxRequestID).(string); ok && v != "" {
		return v
	}

	return uuid.NewString()
}

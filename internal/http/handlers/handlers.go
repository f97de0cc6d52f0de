package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	apierrors "github.com/agussaepos/saepos-cms/internal/errors"
	"github.com/agussaepos/saepos-cms/internal/models"
)

//go:generate mockgen -source=handlers.go -destination=../../../mocks/mock_backend.go -package=mocks

// Backend — операции CMS backend'а, которые дергают хендлеры.
// Реализуется client.Client; интерфейс нужен для подмены в тестах.
type Backend interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context) (*models.DashboardStats, error)

	Partners(ctx context.Context, params models.ListParams) (*models.List[models.Partner], error)
	Partner(ctx context.Context, id int64) (*models.Partner, error)
	PartnerStores(ctx context.Context, id int64) (*models.List[models.Store], error)
	CreatePartner(ctx context.Context, in models.CreatePartnerInput) (*models.Partner, error)
	UpdatePartner(ctx context.Context, id int64, in models.UpdatePartnerInput) (*models.Partner, error)
	DeletePartner(ctx context.Context, id int64) error

	Admins(ctx context.Context, params models.ListParams) (*models.List[models.User], error)
	Employees(ctx context.Context, params models.ListParams) (*models.List[models.User], error)
	Stores(ctx context.Context, params models.ListParams) (*models.List[models.Store], error)
	Products(ctx context.Context, params models.ListParams) (*models.List[models.Product], error)
	Categories(ctx context.Context, params models.ListParams) (*models.List[models.Category], error)
	Transactions(ctx context.Context, params models.ListParams) (*models.List[models.Transaction], error)
}

// SessionReader — снимок процессной сессии для GET /auth/session.
// Реализуется session.Store.
type SessionReader interface {
	Session() models.Session
	Initialized() bool
}

// Handlers агрегирует зависимости (клиент backend'а и стор сессии).
type Handlers struct {
	Backend  Backend
	Sessions SessionReader
}

func New(b Backend, s SessionReader) *Handlers {
	return &Handlers{Backend: b, Sessions: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parseListParams разбирает общие query-параметры списочных эндпойнтов.
// Невалидные числа и неизвестный sortOrder -> invalid_argument.
func parseListParams(r *http.Request) (models.ListParams, error) {
	params := models.ListParams{Page: defaultPage, Limit: defaultLimit}

	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return params, fmt.Errorf("page: %w", apierrors.ErrInvalidArgument)
		}
		params.Page = n
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxLimit {
			return params, fmt.Errorf("limit: %w", apierrors.ErrInvalidArgument)
		}
		params.Limit = n
	}

	params.SortBy = q.Get("sortBy")

	if v := q.Get("sortOrder"); v != "" {
		switch models.SortOrder(v) {
		case models.SortAsc, models.SortDesc:
			params.SortOrder = models.SortOrder(v)
		default:
			return params, fmt.Errorf("sortOrder: %w", apierrors.ErrInvalidArgument)
		}
	}

	params.Search = q.Get("search")

	if v := q.Get("storeId"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			return params, fmt.Errorf("storeId: %w", apierrors.ErrInvalidArgument)
		}
		params.StoreID = n
	}

	return params, nil
}

// parseID разбирает числовой path-параметр.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("id: %w", apierrors.ErrInvalidArgument)
	}
	return id, nil
}

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agussaepos/saepos-cms/internal/models"
)

// resources.go — типизированные read-вызовы CMS: дашборд и списочные
// коллекции. Все идут через аутентифицированный пайплайн (call).

// listResource — общий GET списочного эндпойнта с конвертом {items, meta}.
func listResource[T any](ctx context.Context, c *Client, path string, params models.ListParams) (*models.List[T], error) {
	var out models.List[T]
	if err := c.call(ctx, http.MethodGet, path, params.Query(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Dashboard возвращает агрегированную статистику дашборда.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	const op = "client.Dashboard"

	var out models.DashboardStats
	if err := c.call(ctx, http.MethodGet, "/dashboard", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Admins возвращает страницу администраторов платформы.
func (c *Client) Admins(ctx context.Context, params models.ListParams) (*models.List[models.User], error) {
	return listResource[models.User](ctx, c, "/users/admins", params)
}

// Employees возвращает страницу сотрудников.
func (c *Client) Employees(ctx context.Context, params models.ListParams) (*models.List[models.User], error) {
	return listResource[models.User](ctx, c, "/users/employees", params)
}

// Stores возвращает страницу точек продаж.
func (c *Client) Stores(ctx context.Context, params models.ListParams) (*models.List[models.Store], error) {
	return listResource[models.Store](ctx, c, "/stores", params)
}

// Products возвращает страницу товаров (params.StoreID фильтрует по точке).
func (c *Client) Products(ctx context.Context, params models.ListParams) (*models.List[models.Product], error) {
	return listResource[models.Product](ctx, c, "/products", params)
}

// Categories возвращает страницу категорий.
func (c *Client) Categories(ctx context.Context, params models.ListParams) (*models.List[models.Category], error) {
	return listResource[models.Category](ctx, c, "/categories", params)
}

// Transactions возвращает страницу транзакций (params.StoreID фильтрует по точке).
func (c *Client) Transactions(ctx context.Context, params models.ListParams) (*models.List[models.Transaction], error) {
	return listResource[models.Transaction](ctx, c, "/transactions", params)
}

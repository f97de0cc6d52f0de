package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/agussaepos/saepos-cms/internal/models"
)

// partners.go — CRUD партнёров (owners в терминах backend API).

// Partners возвращает страницу партнёров.
func (c *Client) Partners(ctx context.Context, params models.ListParams) (*models.List[models.Partner], error) {
	return listResource[models.Partner](ctx, c, "/users/partners", params)
}

// Partner возвращает партнёра по идентификатору.
func (c *Client) Partner(ctx context.Context, id int64) (*models.Partner, error) {
	const op = "client.Partner"

	var out models.Partner
	if err := c.call(ctx, http.MethodGet, "/users/partners/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// PartnerStores возвращает точки продаж партнёра.
func (c *Client) PartnerStores(ctx context.Context, id int64) (*models.List[models.Store], error) {
	path := "/users/partners/" + strconv.FormatInt(id, 10) + "/stores"
	return listResource[models.Store](ctx, c, path, models.ListParams{})
}

// CreatePartner создаёт партнёра (POST /users/owners).
func (c *Client) CreatePartner(ctx context.Context, in models.CreatePartnerInput) (*models.Partner, error) {
	const op = "client.CreatePartner"

	var out models.Partner
	if err := c.call(ctx, http.MethodPost, "/users/owners", nil, in, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// UpdatePartner обновляет партнёра (PUT /users/{id}); nil-поля не меняются.
func (c *Client) UpdatePartner(ctx context.Context, id int64, in models.UpdatePartnerInput) (*models.Partner, error) {
	const op = "client.UpdatePartner"

	var out models.Partner
	if err := c.call(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), nil, in, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// DeletePartner удаляет партнёра (DELETE /users/{id}).
func (c *Client) DeletePartner(ctx context.Context, id int64) error {
	const op = "client.DeletePartner"

	if err := c.call(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

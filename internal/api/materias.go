package api

import (
	"context"
	"fmt"
	"net/http"

	"eduaventuras/internal/entity"
)

func (c *Client) ListMaterias(ctx context.Context) ([]entity.Materia, error) {
	resp, err := c.Fetch(ctx, http.MethodGet, "/materias", nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Materia
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMateria(ctx context.Context, id int64) (*entity.Materia, error) {
	resp, err := c.Fetch(ctx, http.MethodGet, fmt.Sprintf("/materias/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var out entity.Materia
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMateria(ctx context.Context, creds Credentials, req entity.MateriaRequest) (*entity.Materia, error) {
	return c.saveMateria(ctx, creds, http.MethodPost, "/materias", req)
}

func (c *Client) UpdateMateria(ctx context.Context, creds Credentials, id int64, req entity.MateriaRequest) (*entity.Materia, error) {
	return c.saveMateria(ctx, creds, http.MethodPut, fmt.Sprintf("/materias/%d", id), req)
}

func (c *Client) saveMateria(ctx context.Context, creds Credentials, method, path string, req entity.MateriaRequest) (*entity.Materia, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.FetchAuthenticated(ctx, creds, method, path, body)
	if err != nil {
		return nil, err
	}
	var out entity.Materia
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMateria(ctx context.Context, creds Credentials, id int64) error {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodDelete, fmt.Sprintf("/materias/%d", id), nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

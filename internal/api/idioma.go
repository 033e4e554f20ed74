package api

import (
	"context"
	"net/http"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
)

type mensajesQuery struct {
	Lang string `url:"lang"`
}

// Mensajes loads the backend's message table for lang.
func (c *Client) Mensajes(ctx context.Context, lang string) (map[string]string, error) {
	v, err := query.Values(mensajesQuery{Lang: lang})
	if err != nil {
		return nil, errors.Wrap(err, "encoding mensajes query")
	}
	resp, err := c.Fetch(ctx, http.MethodGet, "/idioma/mensajes?"+v.Encode(), nil)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IdiomasDisponibles returns the backend's locale code to display name map.
func (c *Client) IdiomasDisponibles(ctx context.Context) (map[string]string, error) {
	resp, err := c.Fetch(ctx, http.MethodGet, "/idioma/idiomas-disponibles", nil)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

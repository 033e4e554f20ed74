package api

import (
	"context"
	"fmt"
	"net/http"

	"eduaventuras/internal/entity"
)

func (c *Client) DashboardEstadisticas(ctx context.Context, creds Credentials) (*entity.Estadisticas, error) {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodGet, "/admin/dashboard/estadisticas", nil)
	if err != nil {
		return nil, err
	}
	var out entity.Estadisticas
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardResumen(ctx context.Context, creds Credentials) (*entity.Resumen, error) {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodGet, "/admin/dashboard/resumen", nil)
	if err != nil {
		return nil, err
	}
	var out entity.Resumen
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DownloadReporteEstadisticas(ctx context.Context, creds Credentials) (*Download, error) {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodGet, "/reportes/estadisticas/descargar", nil)
	if err != nil {
		return nil, err
	}
	return download(resp, "reporte-estadisticas.pdf")
}

func (c *Client) DownloadReporteMateria(ctx context.Context, creds Credentials, materiaID int64) (*Download, error) {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodGet, fmt.Sprintf("/reportes/materia/%d/descargar", materiaID), nil)
	if err != nil {
		return nil, err
	}
	return download(resp, fmt.Sprintf("reporte-materia-%d.pdf", materiaID))
}

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"eduaventuras/internal/entity"
)

func (c *Client) ListRecursos(ctx context.Context) ([]entity.Recurso, error) {
	return c.listRecursos(ctx, "/recursos")
}

func (c *Client) ListRecursosByMateria(ctx context.Context, materiaID int64) ([]entity.Recurso, error) {
	return c.listRecursos(ctx, fmt.Sprintf("/recursos/materia/%d", materiaID))
}

func (c *Client) listRecursos(ctx context.Context, path string) ([]entity.Recurso, error) {
	resp, err := c.Fetch(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Recurso
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DownloadRecurso(ctx context.Context, creds Credentials, id int64) (*Download, error) {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodGet, fmt.Sprintf("/recursos/%d/descargar", id), nil)
	if err != nil {
		return nil, err
	}
	return download(resp, fmt.Sprintf("recurso-%d.pdf", id))
}

// UploadRecurso sends a PDF with its metadata as multipart/form-data to /recursos/subir.
func (c *Client) UploadRecurso(ctx context.Context, creds Credentials, r entity.NuevoRecurso, filename string, file io.Reader) (*entity.Recurso, error) {
	parts := []Part{
		{Name: "titulo", Value: r.Titulo},
		{Name: "descripcion", Value: r.Descripcion},
		{Name: "materiaId", Value: strconv.FormatInt(r.MateriaID, 10)},
		{Name: "usuarioId", Value: strconv.FormatInt(r.UsuarioID, 10)},
		{Name: "file", Filename: filename, ContentType: "application/pdf", Content: file},
	}
	resp, err := c.FetchMultipart(ctx, creds, "/recursos/subir", parts)
	if err != nil {
		return nil, err
	}
	var out entity.Recurso
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRecurso(ctx context.Context, creds Credentials, id int64) error {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodDelete, fmt.Sprintf("/recursos/%d", id), nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

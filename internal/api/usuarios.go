package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"eduaventuras/internal/entity"
)

func (c *Client) ListUsuarios(ctx context.Context, creds Credentials) ([]entity.Usuario, error) {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodGet, "/usuarios", nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Usuario
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ChangeRol(ctx context.Context, creds Credentials, id int64, rol entity.Rol) error {
	return c.putUsuario(ctx, creds, fmt.Sprintf("/usuarios/%d/rol", id), map[string]any{"rol": rol})
}

func (c *Client) ChangeEstado(ctx context.Context, creds Credentials, id int64, activo bool) error {
	return c.putUsuario(ctx, creds, fmt.Sprintf("/usuarios/%d/estado", id), map[string]any{"activo": activo})
}

func (c *Client) putUsuario(ctx context.Context, creds Credentials, path string, payload any) error {
	body, err := jsonBody(payload)
	if err != nil {
		return err
	}
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

func (c *Client) DeleteUsuario(ctx context.Context, creds Credentials, id int64) error {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

func (c *Client) GetPerfil(ctx context.Context, creds Credentials) (*entity.Usuario, error) {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodGet, "/perfil", nil)
	if err != nil {
		return nil, err
	}
	var out entity.Usuario
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePerfil(ctx context.Context, creds Credentials, req entity.ActualizarPerfilRequest) (*entity.Usuario, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodPut, "/perfil", body)
	if err != nil {
		return nil, err
	}
	var out entity.Usuario
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadFoto sends a profile picture as the multipart field "foto".
func (c *Client) UploadFoto(ctx context.Context, creds Credentials, filename, contentType string, file io.Reader) error {
	resp, err := c.FetchMultipart(ctx, creds, "/perfil/foto", []Part{
		{Name: "foto", Filename: filename, ContentType: contentType, Content: file},
	})
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

func (c *Client) DeleteFoto(ctx context.Context, creds Credentials) error {
	resp, err := c.FetchAuthenticated(ctx, creds, http.MethodDelete, "/perfil/foto", nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// Foto fetches a user's profile picture.
func (c *Client) Foto(ctx context.Context, usuarioID int64) (*Download, error) {
	resp, err := c.Fetch(ctx, http.MethodGet, fmt.Sprintf("/perfil/foto/%d", usuarioID), nil)
	if err != nil {
		return nil, err
	}
	return download(resp, fmt.Sprintf("foto-%d", usuarioID))
}

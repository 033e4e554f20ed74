package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"eduaventuras/internal/entity"
)

// ErrNoToken means login answered 2xx without a token.
var ErrNoToken = errors.New("api: login response carries no token")

// Login posts credentials to /usuarios/login. When the answer has no nested usuario the
// top-level object is read as the user.
func (c *Client) Login(ctx context.Context, req entity.LoginRequest) (*entity.LoginResponse, error) {
	return c.authenticate(ctx, "/usuarios/login", req)
}

// Register posts a new account to /usuarios/registro.
func (c *Client) Register(ctx context.Context, req entity.RegistroRequest) (*entity.LoginResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.Fetch(ctx, http.MethodPost, "/usuarios/registro", body)
	if err != nil {
		return nil, err
	}
	var out entity.LoginResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) authenticate(ctx context.Context, path string, payload any) (*entity.LoginResponse, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	resp, err := c.Fetch(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := decode(resp, &raw); err != nil {
		return nil, err
	}

	var out entity.LoginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decoding login response")
	}
	if out.Token == "" {
		return nil, ErrNoToken
	}
	if out.Usuario == nil {
		var u entity.Usuario
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, errors.Wrap(err, "decoding login user")
		}
		out.Usuario = &u
	}
	return &out, nil
}

// Recuperacion is the answer of POST /password/recuperar. Token is only present on development
// backends that skip sending the email.
type Recuperacion struct {
	Mensaje string `json:"mensaje"`
	Token   string `json:"token"`
}

func (c *Client) RecuperarPassword(ctx context.Context, email string) (*Recuperacion, error) {
	body, err := jsonBody(map[string]string{"email": email})
	if err != nil {
		return nil, err
	}
	resp, err := c.Fetch(ctx, http.MethodPost, "/password/recuperar", body)
	if err != nil {
		return nil, err
	}
	var out Recuperacion
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidarToken reports whether a recovery token is still usable.
func (c *Client) ValidarToken(ctx context.Context, token string) (bool, error) {
	body, err := jsonBody(map[string]string{"token": token})
	if err != nil {
		return false, err
	}
	resp, err := c.Fetch(ctx, http.MethodPost, "/password/validar-token", body)
	if err != nil {
		return false, err
	}
	var out struct {
		Valido bool `json:"valido"`
	}
	if err := decode(resp, &out); err != nil {
		return false, err
	}
	return out.Valido, nil
}

func (c *Client) RestablecerPassword(ctx context.Context, token, password string) error {
	body, err := jsonBody(map[string]string{"token": token, "password": password})
	if err != nil {
		return err
	}
	resp, err := c.Fetch(ctx, http.MethodPost, "/password/restablecer", body)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduaventuras/internal/entity"
	"eduaventuras/internal/logger"
)

type fakeCreds struct {
	token   string
	expired int
}

func (f *fakeCreds) Token() string { return f.token }
func (f *fakeCreds) Expire()       { f.expired++ }

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", 0, logger.Discard()), &calls
}

func TestFetchAuthenticatedWithoutTokenSendsNothing(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := c.FetchAuthenticated(context.Background(), &fakeCreds{}, http.MethodGet, "/usuarios", nil)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestFetchAuthenticatedSetsHeaders(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/materias", r.URL.Path)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "fr", r.Header.Get("Accept-Language"))
		w.WriteHeader(http.StatusCreated)
	})

	ctx := WithLocale(context.Background(), "fr")
	resp, err := c.FetchAuthenticated(ctx, &fakeCreds{token: "t1"}, http.MethodPost, "/materias", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestFetchAuthenticatedExpiresOn401(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"mensaje":"token vencido"}`)
	})
	creds := &fakeCreds{token: "t1"}

	_, err := c.FetchAuthenticated(context.Background(), creds, http.MethodGet, "/perfil", nil)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 1, creds.expired)
}

func TestFetchAuthenticatedReturnsOtherStatuses(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	creds := &fakeCreds{token: "t1"}

	resp, err := c.FetchAuthenticated(context.Background(), creds, http.MethodGet, "/usuarios", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, creds.expired)
}

func TestFetchMultipartKeepsBoundaryContentType(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "Guía", r.FormValue("titulo"))
		assert.Equal(t, "7", r.FormValue("usuarioId"))
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		assert.Equal(t, "guia.pdf", hdr.Filename)
		data, _ := io.ReadAll(f)
		assert.Equal(t, "%PDF-1.4", string(data))
		_, _ = io.WriteString(w, `{"id":9,"titulo":"Guía"}`)
	})

	rec, err := c.UploadRecurso(context.Background(), &fakeCreds{token: "t1"},
		entity.NuevoRecurso{Titulo: "Guía", MateriaID: 3, UsuarioID: 7}, "guia.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), rec.ID)
}

func TestTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1/api", 0, logger.Discard())

	_, err := c.ListMaterias(context.Background())

	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestErrorMessageChain(t *testing.T) {
	tests := []struct {
		name   string
		ctype  string
		body   string
		status int
		want   string
	}{
		{"mensaje wins", "application/json", `{"mensaje":"a","message":"b","error":"c"}`, 400, "a"},
		{"message next", "application/json", `{"message":"b","error":"c"}`, 400, "b"},
		{"error last", "application/json", `{"error":"c"}`, 409, "c"},
		{"json without fields", "application/json", `{"status":500}`, 500, "HTTP 500: Internal Server Error"},
		{"not json", "text/html", `<h1>down</h1>`, 502, "HTTP 502: Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.ctype)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.ListMaterias(context.Background())

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestLoginFallsBackToTopLevelUser(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token":"t1","id":4,"nombre":"Ana","email":"ana@x.com","rol":"ESTUDIANTE"}`)
	})

	out, err := c.Login(context.Background(), entity.LoginRequest{Email: "ana@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "t1", out.Token)
	require.NotNil(t, out.Usuario)
	assert.Equal(t, int64(4), out.Usuario.ID)
	assert.Equal(t, entity.RolEstudiante, out.Usuario.Rol)
}

func TestLoginWithoutToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"usuario":{"id":4}}`)
	})

	_, err := c.Login(context.Background(), entity.LoginRequest{Email: "a@x.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestMensajesEncodesLang(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/idioma/mensajes", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		_, _ = io.WriteString(w, `{"login.button":"Sign in"}`)
	})

	msgs, err := c.Mensajes(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "Sign in", msgs["login.button"])
}

func TestDownloadReadsFilename(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recursos/5/descargar", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="algebra.pdf"`)
		_, _ = io.WriteString(w, "%PDF")
	})

	d, err := c.DownloadRecurso(context.Background(), &fakeCreds{token: "t1"}, 5)
	require.NoError(t, err)
	defer d.Body.Close()
	assert.Equal(t, "algebra.pdf", d.Filename)
	assert.Equal(t, "application/pdf", d.ContentType)
}

func TestValidarToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"valido":true}`)
	})

	ok, err := c.ValidarToken(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, ok)
}

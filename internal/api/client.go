package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"eduaventuras/internal/logger"
)

// Credentials is the part of a browser session the client needs.
type Credentials interface {
	Token() string
	// Expire clears the session and redirects the browser to login, once per request.
	Expire()
}

// Client talks to the EduAventuras REST API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// New builds a client for baseURL (for example http://localhost:8080/api). A zero timeout means
// calls are bounded only by their context.
func New(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type localeKey struct{}

// WithLocale makes calls made with ctx send Accept-Language: code.
func WithLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, localeKey{}, code)
}

// Fetch sends an unauthenticated request. body, when not nil, is sent as JSON.
func (c *Client) Fetch(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

// FetchAuthenticated sends a request carrying the session's bearer token. Without a token it
// fails with ErrUnauthenticated and sends nothing. A 401 answer expires the session and yields
// ErrSessionExpired; any other status is returned to the caller untouched.
func (c *Client) FetchAuthenticated(ctx context.Context, creds Credentials, method, path string, body io.Reader) (*http.Response, error) {
	token := creds.Token()
	if token == "" {
		return nil, ErrUnauthenticated
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.authenticated(creds, req)
}

// Part is one field of a multipart form. File parts set Filename.
type Part struct {
	Name        string
	Value       string
	Filename    string
	ContentType string
	Content     io.Reader
}

// FetchMultipart posts a multipart form with the session's bearer token. The content type is
// the multipart one with its boundary, never JSON.
func (c *Client) FetchMultipart(ctx context.Context, creds Credentials, path string, parts []Part) (*http.Response, error) {
	token := creds.Token()
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		if err := writePart(mw, p); err != nil {
			return nil, errors.Wrapf(err, "encoding multipart field %q", p.Name)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, "closing multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.authenticated(creds, req)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writePart(mw *multipart.Writer, p Part) error {
	if p.Filename == "" {
		return mw.WriteField(p.Name, p.Value)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(p.Name), quoteEscaper.Replace(p.Filename)))
	ct := p.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	w, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, p.Content)
	return err
}

func (c *Client) authenticated(creds Credentials, req *http.Request) (*http.Response, error) {
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		logger.FromContext(req.Context()).WithField("path", req.URL.Path).Info("backend rejected session token")
		creds.Expire()
		return nil, ErrSessionExpired
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if code, ok := ctx.Value(localeKey{}).(string); ok && code != "" {
		req.Header.Set("Accept-Language", code)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	entry := logger.FromContext(req.Context()).WithFields(logrus.Fields{
		"backend_method": req.Method,
		"backend_url":    req.URL.String(),
		"elapsed":        time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Error("backend unreachable")
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	entry.WithField("backend_status", resp.StatusCode).Debug("backend call")
	return resp, nil
}

// jsonBody encodes v for a request body.
func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encoding request body")
	}
	return bytes.NewReader(data), nil
}

// decode reads a 2xx JSON answer into out (which may be nil) and turns anything else into an
// *Error. The body is always closed.
func decode(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFrom(resp)
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return errors.Wrap(err, "decoding backend response")
	}
	return nil
}

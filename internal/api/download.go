package api

import (
	"io"
	"mime"
	"net/http"
)

// Download is a binary answer streamed through to the browser. The caller closes Body.
type Download struct {
	Filename      string
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}

func download(resp *http.Response, fallbackName string) (*Download, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFrom(resp)
	}
	d := &Download{
		Filename:      fallbackName,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		d.Filename = params["filename"]
	}
	if d.ContentType == "" {
		d.ContentType = "application/octet-stream"
	}
	return d, nil
}

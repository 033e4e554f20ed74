package handler

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"eduaventuras/internal/api"
	"eduaventuras/internal/cache"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/i18n"
	"eduaventuras/internal/logger"
	"eduaventuras/internal/middleware"
	"eduaventuras/internal/session"
	"eduaventuras/internal/validation"
	"eduaventuras/internal/view"
)

// Deps is what every page controller needs.
type Deps struct {
	API       *api.Client
	View      *view.Renderer
	I18n      *i18n.Bundle
	Validator *validation.Validator
	Guard     *middleware.Guard
	Sessions  *session.Store
	Materias  cache.Snapshots[entity.Materia]
	Usuarios  cache.Snapshots[entity.Usuario]
	// Languages offered by the selector.
	Languages []i18n.Language
	// RemoteMessages refreshes a locale's messages from the backend when it is chosen.
	RemoteMessages bool
	Log            *logrus.Logger
}

type base struct {
	*Deps
}

func (b base) session(r *http.Request) *session.Session {
	return session.FromContext(r.Context())
}

func (b base) localizer(r *http.Request) *i18n.Localizer {
	return b.I18n.Localizer(i18n.Detect(b.session(r).Locale(), r.Header.Get("Accept-Language")))
}

// ctx is the request context carrying the request locale for backend calls.
func (b base) ctx(r *http.Request) context.Context {
	return api.WithLocale(r.Context(), b.localizer(r).Locale)
}

func (b base) log(r *http.Request) *logrus.Entry {
	return logger.FromContext(r.Context())
}

// pageOpt adjusts a page before rendering.
type pageOpt func(*view.Page)

func withAlert(tipo, mensaje string, params map[string]string) pageOpt {
	return func(p *view.Page) {
		p.Alerts = append(p.Alerts, session.Alert{Tipo: tipo, Mensaje: mensaje, Params: params})
	}
}

func withRetry() pageOpt {
	return func(p *view.Page) { p.Retry = true }
}

// render shows page name. Queued flashes are shown first.
func (b base) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any, opts ...pageOpt) {
	sess := b.session(r)
	page := &view.Page{
		Title:     title,
		Languages: b.Languages,
		User:      sess.CurrentUser(),
		Alerts:    sess.Flashes(),
		Path:      r.URL.RequestURI(),
		Data:      data,
	}
	for _, opt := range opts {
		opt(page)
	}
	b.View.Render(w, r, status, name, b.localizer(r), page)
}

// redirect queues an alert and sends the browser to target.
func (b base) redirect(w http.ResponseWriter, r *http.Request, target, tipo, mensaje string, params map[string]string) {
	if err := b.session(r).AddFlash(session.Alert{Tipo: tipo, Mensaje: mensaje, Params: params}); err != nil {
		b.log(r).WithError(err).Error("queueing flash")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// describe turns a failed backend call into the alert shown to the user. handled is true when
// the response has already been answered.
func (b base) describe(w http.ResponseWriter, r *http.Request, err error) (alert session.Alert, status int, retry, handled bool) {
	var (
		apiErr       *api.Error
		transportErr *api.TransportError
	)
	switch {
	case errors.Is(err, api.ErrSessionExpired) || b.session(r).Expired():
		return alert, 0, false, true
	case errors.Is(err, api.ErrUnauthenticated):
		http.Redirect(w, r, middleware.LoginRequired, http.StatusSeeOther)
		return alert, 0, false, true
	case errors.As(err, &transportErr):
		return session.Alert{Tipo: "danger", Mensaje: "error.conexion"}, http.StatusBadGateway, true, false
	case errors.As(err, &apiErr):
		if apiErr.Status == http.StatusForbidden {
			rol := "-"
			if u := b.session(r).CurrentUser(); u != nil {
				rol = string(u.Rol)
			}
			return session.Alert{Tipo: "danger", Mensaje: "error.acceso.denegado", Params: map[string]string{"rol": rol}}, http.StatusForbidden, false, false
		}
		status := apiErr.Status
		if status < 400 {
			status = http.StatusInternalServerError
		}
		return session.Alert{Tipo: "danger", Mensaje: apiErr.Message}, status, false, false
	default:
		b.log(r).WithError(err).Error("unexpected failure")
		return session.Alert{Tipo: "danger", Mensaje: "error.general"}, http.StatusInternalServerError, false, false
	}
}

// failPage reports err in place of the page that could not be built.
func (b base) failPage(w http.ResponseWriter, r *http.Request, err error) {
	b.failOn(w, r, "error", "error.pagina", view.ErrorData{}, err)
}

// failOn re-renders page name with data and the alert describing err.
func (b base) failOn(w http.ResponseWriter, r *http.Request, name, title string, data any, err error) {
	status, opts, handled := b.failure(w, r, err)
	if handled {
		return
	}
	b.render(w, r, status, name, title, data, opts...)
}

// failure is describe in the shape render takes.
func (b base) failure(w http.ResponseWriter, r *http.Request, err error) (int, []pageOpt, bool) {
	alert, status, retry, handled := b.describe(w, r, err)
	if handled {
		return 0, nil, true
	}
	opts := []pageOpt{withAlert(alert.Tipo, alert.Mensaje, alert.Params)}
	if retry {
		opts = append(opts, withRetry())
	}
	return status, opts, false
}

// failAction reports err of a form submission on the page at back.
func (b base) failAction(w http.ResponseWriter, r *http.Request, err error, back string) {
	alert, _, _, handled := b.describe(w, r, err)
	if handled {
		return
	}
	b.redirect(w, r, back, alert.Tipo, alert.Mensaje, alert.Params)
}

// notFound rejects an action on something the user was never shown.
func (b base) notFound(w http.ResponseWriter, r *http.Request, back, what string) {
	loc := b.localizer(r)
	b.redirect(w, r, back, "danger", "error.no.encontrado", map[string]string{"recurso": loc.T(what)})
}

// stream copies a backend download to the browser. inline asks the browser to display it.
func (b base) stream(w http.ResponseWriter, r *http.Request, d *api.Download, inline bool) {
	defer d.Body.Close()
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	h := w.Header()
	h.Set("Content-Type", d.ContentType)
	h.Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": d.Filename}))
	if d.ContentLength > 0 {
		h.Set("Content-Length", strconv.FormatInt(d.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)
	if n, err := io.Copy(w, d.Body); err != nil {
		b.log(r).WithError(err).WithField("written", n).Warn("download interrupted")
	}
}

// backTo is the Referer when it points at this host, else fallback.
func backTo(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host || ref.Path == "" {
		return fallback
	}
	return ref.RequestURI()
}

// idVar reads a positive numeric path variable.
func idVar(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id, err == nil && id > 0
}

// fieldErrors converts validation failures into per-field messages. Other errors are returned.
func fieldErrors(err error) (view.FieldErrors, error) {
	if err == nil {
		return nil, nil
	}
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return view.FieldErrors(fe), nil
	}
	return nil, err
}

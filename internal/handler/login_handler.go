package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"eduaventuras/internal/api"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/middleware"
	"eduaventuras/internal/view"
)

type loginForm struct {
	Email      string `form:"email" validate:"required,email"`
	Password   string `form:"password" validate:"required"`
	Recordarme bool   `form:"recordarme"`
}

type LoginHandler struct {
	base
}

func NewLoginHandler(deps *Deps) *LoginHandler {
	return &LoginHandler{base{deps}}
}

var alertTipos = map[string]bool{"success": true, "info": true, "warning": true, "danger": true}

// LoginPage shows the login form, or sends an authenticated user to their landing page.
func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if sess.IsAuthenticated() {
		middleware.RedirectByRole(w, r, sess.CurrentUser())
		return
	}

	data := view.LoginData{}
	data.Email, data.Recordarme = sess.Remember()

	var opts []pageOpt
	if mensaje := r.URL.Query().Get("mensaje"); mensaje != "" {
		tipo := r.URL.Query().Get("tipo")
		if !alertTipos[tipo] {
			tipo = "info"
		}
		opts = append(opts, withAlert(tipo, mensaje, nil))
	}
	h.render(w, r, http.StatusOK, "login", "login.titulo", data, opts...)
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := loginForm{
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Password:   r.PostFormValue("password"),
		Recordarme: r.PostFormValue("recordarme") == "true",
	}
	data := view.LoginData{Email: form.Email, Recordarme: form.Recordarme}

	loc := h.localizer(r)
	errs, err := fieldErrors(h.Validator.Struct(loc.Locale, form))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if errs != nil {
		data.Errors = errs
		h.render(w, r, http.StatusUnprocessableEntity, "login", "login.titulo", data)
		return
	}

	res, err := h.API.Login(h.ctx(r), entity.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		h.loginFailed(w, r, data, err)
		return
	}

	log := h.log(r).WithField("usuario_id", res.Usuario.ID)
	sess := h.session(r)
	if err := sess.SetSession(res.Token, res.Usuario.SessionUser()); err != nil {
		log.WithError(err).Warn("login response cannot start a session")
		h.render(w, r, http.StatusBadGateway, "login", "login.titulo", data, withAlert("danger", "error.general", nil))
		return
	}
	if form.Recordarme {
		err = sess.SetRemember(form.Email)
	} else {
		err = sess.Forget()
	}
	if err != nil {
		log.WithError(err).Error("saving remember-me choice")
	}

	log.WithField("rol", res.Usuario.Rol).Info("login")
	middleware.RedirectByRole(w, r, sess.CurrentUser())
}

func (h *LoginHandler) loginFailed(w http.ResponseWriter, r *http.Request, data view.LoginData, err error) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		mensaje := apiErr.Field("mensaje", "error")
		if mensaje == "" {
			mensaje = "error.credenciales"
		}
		h.render(w, r, http.StatusUnauthorized, "login", "login.titulo", data, withAlert("danger", mensaje, nil))
	case errors.Is(err, api.ErrNoToken):
		h.log(r).Warn("login answered without a token")
		h.render(w, r, http.StatusBadGateway, "login", "login.titulo", data, withAlert("danger", "error.credenciales", nil))
	default:
		h.failOn(w, r, "login", "login.titulo", data, err)
	}
}

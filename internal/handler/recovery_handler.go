package handler

import (
	"net/http"
	"net/url"
	"strings"

	"eduaventuras/internal/view"
)

// Recovered is where the browser lands after choosing a new password.
const Recovered = "/login?mensaje=recuperar.exito&tipo=success"

const recuperar = "/recuperar-password"

type recuperarForm struct {
	Email string `form:"email" validate:"required,email"`
}

type restablecerForm struct {
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required"`
}

// RecoveryHandler walks a visitor through resetting a forgotten password: request a link,
// follow it, choose a new password.
type RecoveryHandler struct {
	base
}

func NewRecoveryHandler(deps *Deps) *RecoveryHandler {
	return &RecoveryHandler{base{deps}}
}

func (h *RecoveryHandler) RecuperarPage(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		h.render(w, r, http.StatusOK, "recuperar", "recuperar.titulo", view.RecuperarData{Paso: 1})
		return
	}

	valido, err := h.API.ValidarToken(h.ctx(r), token)
	if err != nil {
		h.failOn(w, r, "recuperar", "recuperar.titulo", view.RecuperarData{Paso: 1}, err)
		return
	}
	if !valido {
		h.render(w, r, http.StatusOK, "recuperar", "recuperar.titulo", view.RecuperarData{Paso: 1},
			withAlert("danger", "recuperar.token.invalido", nil))
		return
	}
	h.render(w, r, http.StatusOK, "recuperar", "recuperar.titulo", view.RecuperarData{Paso: 3, Token: token})
}

// Recuperar asks the backend to send a reset link. Development backends hand the token back,
// in which case the link is shown right away.
func (h *RecoveryHandler) Recuperar(w http.ResponseWriter, r *http.Request) {
	form := recuperarForm{Email: strings.TrimSpace(r.PostFormValue("email"))}
	data := view.RecuperarData{Paso: 1, Email: form.Email}

	errs, err := fieldErrors(h.Validator.Struct(h.localizer(r).Locale, form))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if errs != nil {
		data.Errors = errs
		h.render(w, r, http.StatusUnprocessableEntity, "recuperar", "recuperar.titulo", data)
		return
	}

	res, err := h.API.RecuperarPassword(h.ctx(r), form.Email)
	if err != nil {
		h.failOn(w, r, "recuperar", "recuperar.titulo", data, err)
		return
	}
	data.Paso = 2
	if res.Token != "" {
		data.Enlace = recuperar + "?" + url.Values{"token": {res.Token}}.Encode()
	}
	h.render(w, r, http.StatusOK, "recuperar", "recuperar.titulo", data)
}

func (h *RecoveryHandler) Restablecer(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.PostFormValue("token"))
	if token == "" {
		h.redirect(w, r, recuperar, "danger", "recuperar.token.invalido", nil)
		return
	}
	form := restablecerForm{
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
	data := view.RecuperarData{Paso: 3, Token: token}

	loc := h.localizer(r)
	errs, err := fieldErrors(h.Validator.Struct(loc.Locale, form))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if form.ConfirmPassword != "" && form.Password != form.ConfirmPassword {
		errs = withField(errs, "confirmPassword", loc.T("registro.password.distintas"))
	}
	if errs != nil {
		data.Errors = errs
		h.render(w, r, http.StatusUnprocessableEntity, "recuperar", "recuperar.titulo", data)
		return
	}

	if err := h.API.RestablecerPassword(h.ctx(r), token, form.Password); err != nil {
		h.failOn(w, r, "recuperar", "recuperar.titulo", data, err)
		return
	}
	h.log(r).Info("password reset")
	http.Redirect(w, r, Recovered, http.StatusSeeOther)
}

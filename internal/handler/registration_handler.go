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

// Registered is where the browser lands after signing up.
const Registered = "/login?mensaje=registro.exito&tipo=success"

// selfAssignable roles can be picked at sign-up. Admins are appointed by other admins.
var selfAssignable = []entity.Rol{entity.RolEstudiante, entity.RolDocente}

type registroForm struct {
	Nombre          string `form:"nombre" validate:"notblank,min=2"`
	Apellido        string `form:"apellido" validate:"notblank,min=2"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required"`
	Rol             string `form:"rol" validate:"required,oneof=DOCENTE ESTUDIANTE"`
	Terminos        bool   `form:"terminos"`
}

type RegistrationHandler struct {
	base
}

func NewRegistrationHandler(deps *Deps) *RegistrationHandler {
	return &RegistrationHandler{base{deps}}
}

func (h *RegistrationHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if sess.IsAuthenticated() {
		middleware.RedirectByRole(w, r, sess.CurrentUser())
		return
	}
	form := registroForm{Rol: string(entity.RolEstudiante)}
	h.render(w, r, http.StatusOK, "registro", "registro.titulo", view.RegistroData{Form: form, Roles: selfAssignable})
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := registroForm{
		Nombre:          strings.TrimSpace(r.PostFormValue("nombre")),
		Apellido:        strings.TrimSpace(r.PostFormValue("apellido")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
		Rol:             r.PostFormValue("rol"),
		Terminos:        r.PostFormValue("terminos") == "true",
	}
	if rol, ok := entity.ParseRol(form.Rol); ok {
		form.Rol = string(rol)
	}

	loc := h.localizer(r)
	errs, err := fieldErrors(h.Validator.Struct(loc.Locale, form))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if form.ConfirmPassword != "" && form.Password != form.ConfirmPassword {
		errs = withField(errs, "confirmPassword", loc.T("registro.password.distintas"))
	}
	if !form.Terminos {
		errs = withField(errs, "terminos", loc.T("registro.terminos.requeridos"))
	}

	data := view.RegistroData{Form: form, Roles: selfAssignable, Errors: errs}
	if errs != nil {
		h.render(w, r, http.StatusUnprocessableEntity, "registro", "registro.titulo", data)
		return
	}

	_, err = h.API.Register(h.ctx(r), entity.RegistroRequest{
		Nombre:   form.Nombre,
		Apellido: form.Apellido,
		Email:    form.Email,
		Password: form.Password,
		Rol:      entity.Rol(form.Rol),
	})
	if err != nil {
		h.registerFailed(w, r, data, err)
		return
	}

	h.log(r).WithField("rol", form.Rol).Info("registered")
	http.Redirect(w, r, Registered, http.StatusSeeOther)
}

func (h *RegistrationHandler) registerFailed(w http.ResponseWriter, r *http.Request, data view.RegistroData, err error) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		h.failOn(w, r, "registro", "registro.titulo", data, err)
		return
	}

	mensaje := registroMessage(apiErr)
	if mensaje == "error.email.registrado" {
		data.Errors = withField(data.Errors, "email", h.localizer(r).T(mensaje))
	}
	h.render(w, r, apiErr.Status, "registro", "registro.titulo", data, withAlert("danger", mensaje, nil))
}

// registroMessage maps a rejected sign-up onto the message shown to the user.
func registroMessage(e *api.Error) string {
	text := e.Field("mensaje", "message", "error")
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "email") || strings.Contains(lower, "correo"):
		return "error.email.registrado"
	case e.Status == http.StatusBadRequest:
		return "error.datos.invalidos"
	case e.Status >= http.StatusInternalServerError:
		return "error.servidor"
	case text != "":
		return text
	default:
		return e.Message
	}
}

func withField(errs view.FieldErrors, field, msg string) view.FieldErrors {
	if errs == nil {
		errs = view.FieldErrors{}
	}
	if _, ok := errs[field]; !ok {
		errs[field] = msg
	}
	return errs
}

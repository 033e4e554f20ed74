package handler

import (
	"net/http"

	"eduaventuras/internal/api"
	"eduaventuras/internal/cache"
)

// LoggedOut is where the browser lands after logging out.
const LoggedOut = "/login?mensaje=auth.sesion.cerrada&tipo=success"

type AuthHandler struct {
	base
}

func NewAuthHandler(deps *Deps) *AuthHandler {
	return &AuthHandler{base{deps}}
}

// Logout ends the session, forgets the remembered email and drops the user's cached listings.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	log := h.log(r)
	if user := sess.CurrentUser(); user != nil {
		ctx := r.Context()
		if err := h.Materias.Delete(ctx, cache.Key("materias", user.ID)); err != nil {
			log.WithError(err).Warn("dropping materias snapshot")
		}
		if err := h.Usuarios.Delete(ctx, cache.Key("usuarios", user.ID)); err != nil {
			log.WithError(err).Warn("dropping usuarios snapshot")
		}
		log = log.WithField("usuario_id", user.ID)
	}
	if err := sess.ClearSession(); err != nil {
		log.WithError(err).Error("clearing session")
	}
	if err := sess.Forget(); err != nil {
		log.WithError(err).Error("forgetting remembered email")
	}
	log.Info("logout")
	http.Redirect(w, r, LoggedOut, http.StatusSeeOther)
}

// Idioma stores the chosen locale and sends the browser back where it came from.
func (h *AuthHandler) Idioma(w http.ResponseWriter, r *http.Request) {
	code := r.PostFormValue("lang")
	back := backTo(r, "/")
	if err := h.I18n.SetLocale(h.session(r), code); err != nil {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	if h.RemoteMessages {
		// the bundle logs failures and keeps its current table
		_ = h.I18n.Refresh(api.WithLocale(r.Context(), code), h.API, code)
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

package handler

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"

	"eduaventuras/internal/entity"
	"eduaventuras/internal/middleware"
	"eduaventuras/internal/view"
)

// NewRouter wires every page behind the request id, access log, session and panic middleware.
func NewRouter(deps *Deps) (http.Handler, error) {
	index := NewIndexHandler(deps)
	login := NewLoginHandler(deps)
	auth := NewAuthHandler(deps)
	registration := NewRegistrationHandler(deps)
	materias := NewMateriaHandler(deps)
	recursos := NewRecursoHandler(deps)
	perfil := NewPerfilHandler(deps)
	stats := NewStatsHandler(deps)
	adminMaterias := NewAdminMateriaHandler(deps)
	adminUsuarios := NewAdminUsuarioHandler(deps)
	recovery := NewRecoveryHandler(deps)

	static, err := fs.Sub(view.Static, "static")
	if err != nil {
		return nil, err
	}

	guard := deps.Guard
	authenticated := guard.Authenticated
	uploaders := guard.Roles(entity.RolDocente, entity.RolAdmin)
	admins := guard.Roles(entity.RolAdmin)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(index.NotFound)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static)))).Methods(http.MethodGet)

	r.HandleFunc("/", index.Index).Methods(http.MethodGet)
	r.HandleFunc("/login", login.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", login.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", auth.Logout).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/idioma", auth.Idioma).Methods(http.MethodPost)
	r.HandleFunc("/registro", registration.RegisterPage).Methods(http.MethodGet)
	r.HandleFunc("/registro", registration.Register).Methods(http.MethodPost)
	r.HandleFunc("/recuperar-password", recovery.RecuperarPage).Methods(http.MethodGet)
	r.HandleFunc("/recuperar-password", recovery.Recuperar).Methods(http.MethodPost)
	r.HandleFunc("/recuperar-password/restablecer", recovery.Restablecer).Methods(http.MethodPost)

	r.Handle("/materias", authenticated(http.HandlerFunc(materias.MateriasPage))).Methods(http.MethodGet)
	r.Handle("/materias/{id:[0-9]+}/recursos", authenticated(http.HandlerFunc(materias.RecursosPage))).Methods(http.MethodGet)

	r.Handle("/recursos/subir", uploaders(http.HandlerFunc(recursos.SubirPage))).Methods(http.MethodGet)
	r.Handle("/recursos/subir", uploaders(http.HandlerFunc(recursos.Subir))).Methods(http.MethodPost)
	r.Handle("/recursos/{id:[0-9]+}/descargar", authenticated(http.HandlerFunc(recursos.Descargar))).Methods(http.MethodGet)
	r.Handle("/recursos/{id:[0-9]+}/eliminar", uploaders(http.HandlerFunc(recursos.Eliminar))).Methods(http.MethodPost)

	r.Handle("/perfil", authenticated(http.HandlerFunc(perfil.PerfilPage))).Methods(http.MethodGet)
	r.Handle("/perfil", authenticated(http.HandlerFunc(perfil.Actualizar))).Methods(http.MethodPost)
	r.Handle("/perfil/foto", authenticated(http.HandlerFunc(perfil.SubirFoto))).Methods(http.MethodPost)
	r.Handle("/perfil/foto/eliminar", authenticated(http.HandlerFunc(perfil.EliminarFoto))).Methods(http.MethodPost)
	r.Handle("/perfil/foto/{id:[0-9]+}", authenticated(http.HandlerFunc(perfil.Foto))).Methods(http.MethodGet)

	r.Handle("/admin/dashboard", admins(http.HandlerFunc(stats.DashboardPage))).Methods(http.MethodGet)
	r.Handle("/admin/dashboard/graficos.json", admins(http.HandlerFunc(stats.Graficos))).Methods(http.MethodGet)

	r.Handle("/admin/materias", uploaders(http.HandlerFunc(adminMaterias.MateriasPage))).Methods(http.MethodGet)
	r.Handle("/admin/materias", uploaders(http.HandlerFunc(adminMaterias.Crear))).Methods(http.MethodPost)
	r.Handle("/admin/materias/{id:[0-9]+}", uploaders(http.HandlerFunc(adminMaterias.Actualizar))).Methods(http.MethodPost)
	r.Handle("/admin/materias/{id:[0-9]+}/eliminar", uploaders(http.HandlerFunc(adminMaterias.Eliminar))).Methods(http.MethodPost)

	r.Handle("/admin/usuarios", admins(http.HandlerFunc(adminUsuarios.UsuariosPage))).Methods(http.MethodGet)
	r.Handle("/admin/usuarios/{id:[0-9]+}/rol", admins(http.HandlerFunc(adminUsuarios.CambiarRol))).Methods(http.MethodPost)
	r.Handle("/admin/usuarios/{id:[0-9]+}/estado", admins(http.HandlerFunc(adminUsuarios.CambiarEstado))).Methods(http.MethodPost)
	r.Handle("/admin/usuarios/{id:[0-9]+}/eliminar", admins(http.HandlerFunc(adminUsuarios.Eliminar))).Methods(http.MethodPost)
	r.Handle("/admin/reportes/estadisticas", admins(http.HandlerFunc(adminUsuarios.ReporteEstadisticas))).Methods(http.MethodGet)
	r.Handle("/admin/reportes/materia/{id:[0-9]+}", admins(http.HandlerFunc(adminUsuarios.ReporteMateria))).Methods(http.MethodGet)

	var h http.Handler = r
	h = middleware.Recover(http.HandlerFunc(index.Failed))(h)
	h = deps.Sessions.Middleware(h)
	h = middleware.AccessLog(h)
	h = middleware.RequestID(deps.Log)(h)
	return h, nil
}

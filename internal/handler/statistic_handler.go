package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"eduaventuras/internal/api"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/i18n"
	"eduaventuras/internal/session"
	"eduaventuras/internal/view"
)

// recent activity shown on the dashboard
const actividadMax = 10

// chartRoles is the order of the users-per-role chart.
var chartRoles = []entity.Rol{entity.RolEstudiante, entity.RolDocente, entity.RolAdmin}

// StatsHandler serves the admin dashboard.
type StatsHandler struct {
	base
}

func NewStatsHandler(deps *Deps) *StatsHandler {
	return &StatsHandler{base{deps}}
}

func (h *StatsHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboard(r)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "dashboard", "dashboard.titulo", data)
}

// Graficos returns the chart data as JSON.
func (h *StatsHandler) Graficos(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	data, err := h.dashboard(r)
	if err != nil {
		alert, status, _, handled := h.describe(w, r, err)
		if handled {
			return
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   h.localizer(r).Message(alert.Mensaje, alert.Params),
		})
		return
	}
	if err := json.NewEncoder(w).Encode(data.Graficos); err != nil {
		h.log(r).WithError(err).Warn("writing chart data")
	}
}

// terminal keeps only the errors that end the request: the other ones degrade the page.
func terminal(err error) error {
	if errors.Is(err, api.ErrSessionExpired) || errors.Is(err, api.ErrUnauthenticated) {
		return err
	}
	return nil
}

// dashboard loads estadísticas and resumen concurrently. A failed estadísticas is rebuilt from
// the plain listings; a failed resumen only loses the activity list.
func (h *StatsHandler) dashboard(r *http.Request) (*view.DashboardData, error) {
	sess := h.session(r)
	ctx := h.ctx(r)
	log := h.log(r)

	var (
		stats      *entity.Estadisticas
		resumen    *entity.Resumen
		statsErr   error
		resumenErr error
		g          errgroup.Group
	)
	g.Go(func() error {
		stats, statsErr = h.API.DashboardEstadisticas(ctx, sess)
		return terminal(statsErr)
	})
	g.Go(func() error {
		resumen, resumenErr = h.API.DashboardResumen(ctx, sess)
		return terminal(resumenErr)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if statsErr != nil {
		log.WithError(statsErr).Warn("estadisticas unavailable, computing from listings")
		var err error
		if stats, err = h.fallback(ctx, sess); err != nil {
			return nil, err
		}
	}

	data := &view.DashboardData{
		Totales:  totales(stats),
		Graficos: graficos(h.localizer(r), stats),
	}
	switch {
	case resumenErr == nil && len(resumen.RecursosRecientes) > 0:
		data.Actividad = resumen.RecursosRecientes
	case len(stats.RecursosRecientes) > 0:
		data.Actividad = stats.RecursosRecientes
	case resumenErr != nil:
		log.WithError(resumenErr).Warn("resumen unavailable")
		data.ActividadFalla = true
	}
	if len(data.Actividad) > actividadMax {
		data.Actividad = data.Actividad[:actividadMax]
	}
	return data, nil
}

// fallback computes the dashboard figures from /usuarios, /materias and /recursos.
func (h *StatsHandler) fallback(ctx context.Context, sess *session.Session) (*entity.Estadisticas, error) {
	var (
		usuarios []entity.Usuario
		materias []entity.Materia
		recursos []entity.Recurso
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		usuarios, err = h.API.ListUsuarios(gctx, sess)
		return err
	})
	g.Go(func() error {
		var err error
		materias, err = h.API.ListMaterias(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recursos, err = h.API.ListRecursos(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statsFromListings(usuarios, materias, recursos), nil
}

func statsFromListings(usuarios []entity.Usuario, materias []entity.Materia, recursos []entity.Recurso) *entity.Estadisticas {
	porRol := &entity.EstadisticasUsuarios{TotalUsuarios: int64(len(usuarios))}
	for _, u := range usuarios {
		switch u.Rol {
		case entity.RolEstudiante:
			porRol.TotalEstudiantes++
		case entity.RolDocente:
			porRol.TotalDocentes++
		case entity.RolAdmin:
			porRol.TotalAdmins++
		}
	}

	nombres := make(map[int64]string, len(materias))
	for _, m := range materias {
		nombres[m.ID] = m.Nombre
	}
	contenido := &entity.EstadisticasContenido{
		TotalMaterias: int64(len(materias)),
		TotalRecursos: int64(len(recursos)),
	}
	all := make([]entity.Recurso, len(recursos))
	for i, rec := range recursos {
		if rec.MateriaNombre == "" {
			rec.MateriaNombre = nombres[rec.MateriaID]
		}
		contenido.TotalDescargas += rec.CantidadDescargas
		all[i] = rec
	}

	recientes := append([]entity.Recurso(nil), all...)
	sort.SliceStable(recientes, func(i, j int) bool {
		return recientes[i].FechaSubida.After(recientes[j].FechaSubida.Time)
	})
	if len(recientes) > actividadMax {
		recientes = recientes[:actividadMax]
	}

	return &entity.Estadisticas{
		Usuarios:          porRol,
		Contenido:         contenido,
		RecursosPopulares: all,
		RecursosRecientes: recientes,
	}
}

// totales reads the nested layout, or the flat one of older backends.
func totales(s *entity.Estadisticas) view.Totales {
	t := view.Totales{
		Usuarios:  s.TotalUsuarios,
		Materias:  s.TotalMaterias,
		Recursos:  s.TotalRecursos,
		Descargas: s.TotalDescargas,
	}
	if s.Usuarios != nil {
		t.Usuarios = s.Usuarios.TotalUsuarios
	}
	if s.Contenido != nil {
		t.Materias = s.Contenido.TotalMaterias
		t.Recursos = s.Contenido.TotalRecursos
		t.Descargas = s.Contenido.TotalDescargas
	}
	return t
}

func graficos(loc *i18n.Localizer, s *entity.Estadisticas) view.Graficos {
	g := view.Graficos{
		UsuariosPorRol:     []view.Serie{},
		RecursosPorMateria: []view.Serie{},
	}
	if u := s.Usuarios; u != nil {
		counts := map[entity.Rol]int64{
			entity.RolEstudiante: u.TotalEstudiantes,
			entity.RolDocente:    u.TotalDocentes,
			entity.RolAdmin:      u.TotalAdmins,
		}
		for _, rol := range chartRoles {
			g.UsuariosPorRol = append(g.UsuariosPorRol, view.Serie{Label: loc.T("rol." + string(rol)), Valor: counts[rol]})
		}
	}

	index := map[string]int{}
	for _, rec := range s.RecursosPopulares {
		label := rec.MateriaNombre
		if label == "" {
			label = loc.T("dashboard.sin.materia")
		}
		i, ok := index[label]
		if !ok {
			i = len(g.RecursosPorMateria)
			index[label] = i
			g.RecursosPorMateria = append(g.RecursosPorMateria, view.Serie{Label: label})
		}
		g.RecursosPorMateria[i].Valor++
	}
	return g
}

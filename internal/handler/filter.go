package handler

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"eduaventuras/internal/entity"
)

// fold lowercases s and strips its accents so "Matemáticas" matches "matematicas".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(fold(f), q) {
			return true
		}
	}
	return false
}

// FilterMaterias keeps the subjects whose name or description contains q.
func FilterMaterias(materias []entity.Materia, q string) []entity.Materia {
	q = fold(q)
	out := make([]entity.Materia, 0, len(materias))
	for _, m := range materias {
		if matches(q, m.Nombre, m.Descripcion) {
			out = append(out, m)
		}
	}
	return out
}

// SortMaterias orders by name, or by resource count (largest first) when orden is "recursos".
func SortMaterias(materias []entity.Materia, orden string) {
	col := collate.New(language.Spanish, collate.IgnoreCase, collate.IgnoreDiacritics)
	if orden == "recursos" {
		sort.SliceStable(materias, func(i, j int) bool {
			if materias[i].CantidadRecursos != materias[j].CantidadRecursos {
				return materias[i].CantidadRecursos > materias[j].CantidadRecursos
			}
			return col.CompareString(materias[i].Nombre, materias[j].Nombre) < 0
		})
		return
	}
	sort.SliceStable(materias, func(i, j int) bool {
		return col.CompareString(materias[i].Nombre, materias[j].Nombre) < 0
	})
}

// FilterRecursos keeps the resources whose title or description contains q.
func FilterRecursos(recursos []entity.Recurso, q string) []entity.Recurso {
	q = fold(q)
	out := make([]entity.Recurso, 0, len(recursos))
	for _, r := range recursos {
		if matches(q, r.Titulo, r.Descripcion) {
			out = append(out, r)
		}
	}
	return out
}

// FilterUsuarios searches full name, email and role.
func FilterUsuarios(usuarios []entity.Usuario, q string) []entity.Usuario {
	q = fold(q)
	out := make([]entity.Usuario, 0, len(usuarios))
	for _, u := range usuarios {
		if matches(q, u.NombreCompleto(), u.Email, string(u.Rol)) {
			out = append(out, u)
		}
	}
	return out
}

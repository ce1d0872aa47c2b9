package voting

import (
	"strings"

	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/models"
)

// Filtro acota el conteo por año, sección o tipo de elección. Campo
// vacío = sin restricción en esa dimensión.
type Filtro struct {
	Anio         string
	Seccion      string
	TipoEleccion string
}

// FiltroDesdeParams arma el filtro desde los query params del endpoint
// de estadísticas: anioSeccion compuesto ("5E") tiene prioridad sobre
// anio/seccion separados. El centinela "all" equivale a vacío.
func FiltroDesdeParams(anioSeccion, anio, seccion, tipo string) Filtro {
	var f Filtro
	if a, s := DescomponerAnioSeccion(anioSeccion); a != "" {
		f.Anio, f.Seccion = a, s
	} else {
		f.Anio = strings.TrimSpace(anio)
		f.Seccion = strings.ToUpper(strings.TrimSpace(seccion))
	}
	tipo = strings.TrimSpace(tipo)
	if tipo != "" && tipo != "all" {
		f.TipoEleccion = tipo
	}
	if f.Anio == "all" {
		f.Anio = ""
	}
	if f.Seccion == "ALL" {
		f.Seccion = ""
	}
	return f
}

// Conteo es un grupo (candidato, elección) con su total de votos.
type Conteo struct {
	CandidatoID    uint    `json:"candidatoId"`
	Nombre         string  `json:"nombre"`
	Apellido       string  `json:"apellido"`
	Grado          string  `json:"grado"`
	Seccion        string  `json:"seccion"`
	TipoEleccion   string  `json:"tipoEleccion"`
	EleccionID     *uint   `json:"eleccionId"`
	EleccionNombre *string `json:"eleccionNombre"`
	Votos          int64   `json:"votos"`
}

// ConteoTipo acompaña el resumen general por categoría.
type ConteoTipo struct {
	Tipo  string `json:"tipo"`
	Votos int64  `json:"votos"`
}

// Tally agrupa votos por candidato y elección. JOIN interno a
// candidatos (un voto con candidato inexistente queda fuera) y LEFT
// JOIN a elecciones (un voto sin eleccionId aparece con elección nula).
// El orden de las filas no está definido; quien consume ordena.
func Tally(db *gorm.DB, f Filtro) ([]Conteo, error) {
	tx := db.Table("votaciones AS v").
		Select("c.id AS candidato_id, c.nombre, c.apellido, c.grado, c.seccion, " +
			"v.tipo_eleccion, v.eleccion_id, e.nombre AS eleccion_nombre, COUNT(*) AS votos").
		Joins("JOIN candidatos c ON c.id = v.candidato_id").
		Joins("LEFT JOIN elecciones e ON e.id = v.eleccion_id")

	if f.Anio != "" {
		tx = tx.Where("c.grado = ?", f.Anio)
	}
	if f.Seccion != "" {
		tx = tx.Where("UPPER(c.seccion) = ?", strings.ToUpper(f.Seccion))
	}
	if f.TipoEleccion != "" {
		tx = tx.Where("v.tipo_eleccion = ?", f.TipoEleccion)
	}

	var out []Conteo
	err := tx.Group("c.id, c.nombre, c.apellido, c.grado, c.seccion, " +
		"v.tipo_eleccion, v.eleccion_id, e.nombre").
		Scan(&out).Error
	return out, err
}

// Resumen devuelve el total general y el desglose por tipo, sin
// filtros (cabecera del reporte de estadísticas).
func Resumen(db *gorm.DB) (int64, []ConteoTipo, error) {
	var total int64
	if err := db.Model(&models.Votacion{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var porTipo []ConteoTipo
	err := db.Model(&models.Votacion{}).
		Select("tipo_eleccion AS tipo, COUNT(*) AS votos").
		Group("tipo_eleccion").
		Scan(&porTipo).Error
	return total, porTipo, err
}

package voting

import (
	"strings"

	"github.com/whygabriel1/rccwebpage87/models"
)

// DescomponerAnioSeccion separa el token compuesto "5E" en año ("5") y
// sección ("E", en mayúscula). Un token de menos de dos caracteres no
// aporta filtro.
func DescomponerAnioSeccion(token string) (anio, seccion string) {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return "", ""
	}
	return token[:1], strings.ToUpper(token[1:2])
}

// EsElegible decide si un estudiante de anioSeccion puede votar por el
// candidato en la elección tipo: mismo año, misma sección (sin
// distinguir mayúsculas), misma categoría y candidato activo.
func EsElegible(c models.Candidato, tipo, anioSeccion string) bool {
	anio, seccion := DescomponerAnioSeccion(anioSeccion)
	if anio == "" {
		return false
	}
	return c.EsActivo() &&
		c.TipoEleccion == tipo &&
		c.Grado == anio &&
		strings.EqualFold(c.Seccion, seccion)
}

// Elegibles filtra la lista completa de candidatos de una categoría a
// los que el estudiante puede elegir.
func Elegibles(candidatos []models.Candidato, tipo, anioSeccion string) []models.Candidato {
	out := make([]models.Candidato, 0, len(candidatos))
	for _, c := range candidatos {
		if EsElegible(c, tipo, anioSeccion) {
			out = append(out, c)
		}
	}
	return out
}

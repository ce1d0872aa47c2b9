package voting

import (
	"fmt"
	"time"
)

// Tipos de elección que maneja el portal.
const (
	TipoEstudiantiles = "estudiantiles"
	TipoCarnaval      = "carnaval"
	TipoVocero        = "vocero"
)

func TipoValido(tipo string) bool {
	switch tipo {
	case TipoEstudiantiles, TipoCarnaval, TipoVocero:
		return true
	}
	return false
}

// Ventanas fijas por categoría (día inicial/final dentro del mes, todos
// los años). Las estudiantiles no tienen ventana: siempre abiertas.
var ventanas = map[string]struct {
	mes          time.Month
	desde, hasta int
	nombre       string
}{
	TipoCarnaval: {time.February, 3, 7, "la Reina del Carnaval"},
	TipoVocero:   {time.September, 20, 24, "Vocero"},
}

var nombresMes = map[time.Month]string{
	time.February:  "febrero",
	time.September: "septiembre",
}

// Disponibilidad evalúa la ventana de la categoría contra la fecha
// dada. No hay estado persistido: es una regla de calendario pura.
// Cuando la elección está cerrada, mensaje explica la ventana.
func Disponibilidad(tipo string, ahora time.Time) (disponible bool, mensaje string) {
	if !TipoValido(tipo) {
		return false, "Tipo de elección desconocido."
	}
	v, ok := ventanas[tipo]
	if !ok {
		return true, ""
	}
	if ahora.Month() == v.mes && ahora.Day() >= v.desde && ahora.Day() <= v.hasta {
		return true, ""
	}
	return false, fmt.Sprintf(
		"Las votaciones de %s solo están disponibles del %d al %d de %s.",
		v.nombre, v.desde, v.hasta, nombresMes[v.mes],
	)
}

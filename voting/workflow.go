package voting

import (
	"errors"
	"strings"
	"time"

	"github.com/whygabriel1/rccwebpage87/models"
)

// Paso del flujo de votación.
type Paso int

const (
	PasoSeleccion Paso = iota // elegir categoría
	PasoCedula                // identificarse por cédula
	PasoDatos                 // confirmar datos precargados
	PasoCandidato             // elegir candidato y votar
	PasoFinalizado            // voto registrado
)

var (
	ErrPasoInvalido           = errors.New("operación fuera de orden en el flujo de votación")
	ErrEleccionNoDisponible   = errors.New("la elección no está disponible en esta fecha")
	ErrEstudianteNoEncontrado = errors.New("estudiante no encontrado")
	ErrSinCandidatos          = errors.New("no hay candidatos para tu año y sección")
	ErrCandidatoNoElegible    = errors.New("el candidato no es elegible para este estudiante")
)

// Directorio resuelve estudiantes por cédula. Un miss devuelve
// (nil, nil); error solo ante fallas del almacén.
type Directorio interface {
	EstudiantePorCedula(cedula string) (*models.Estudiante, error)
}

// Padron lista los candidatos de una categoría.
type Padron interface {
	CandidatosPorTipo(tipo string) ([]models.Candidato, error)
}

// Urna registra el voto aplicando la regla de voto único.
type Urna interface {
	Registrar(v *models.Votacion) error
}

// Datos del votante, precargados desde el directorio y editables antes
// de avanzar (la cédula no se edita).
type Datos struct {
	Cedula      string
	Nombre      string
	Apellido    string
	Rol         string
	AnioSeccion string
	Direccion   string
}

// Flujo es la máquina de estados del proceso de votación, pasada y
// devuelta por valor: cada transición retorna el flujo siguiente, y
// ante error retorna el receptor sin cambios (el llamador permanece en
// el paso donde estaba).
type Flujo struct {
	Paso       Paso
	Tipo       string
	Datos      Datos
	Candidatos []models.Candidato
	Voto       *models.Votacion
}

func NuevoFlujo() Flujo {
	return Flujo{Paso: PasoSeleccion}
}

// SeleccionarTipo fija la categoría si su ventana está abierta.
func (f Flujo) SeleccionarTipo(tipo string, ahora time.Time) (Flujo, error) {
	if f.Paso != PasoSeleccion {
		return f, ErrPasoInvalido
	}
	if ok, _ := Disponibilidad(tipo, ahora); !ok {
		return f, ErrEleccionNoDisponible
	}
	f.Tipo = tipo
	f.Paso = PasoCedula
	return f, nil
}

// Identificar busca la cédula en el directorio y precarga los datos
// del votante. Un miss deja el flujo en el paso de cédula.
func (f Flujo) Identificar(dir Directorio, cedula string) (Flujo, error) {
	if f.Paso != PasoCedula {
		return f, ErrPasoInvalido
	}
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return f, ErrEstudianteNoEncontrado
	}
	est, err := dir.EstudiantePorCedula(cedula)
	if err != nil {
		return f, err
	}
	if est == nil {
		return f, ErrEstudianteNoEncontrado
	}
	f.Datos = Datos{
		Cedula:      est.Cedula,
		Nombre:      est.Nombre,
		Apellido:    est.Apellido,
		Rol:         "Estudiante",
		AnioSeccion: est.AnioSeccion,
		Direccion:   est.Direccion,
	}
	f.Paso = PasoDatos
	return f, nil
}

// Confirmar acepta ediciones sobre los campos precargados (campo vacío
// conserva el valor precargado) y avanza a la elección de candidato.
func (f Flujo) Confirmar(d Datos) (Flujo, error) {
	if f.Paso != PasoDatos {
		return f, ErrPasoInvalido
	}
	if d.Nombre != "" {
		f.Datos.Nombre = d.Nombre
	}
	if d.Apellido != "" {
		f.Datos.Apellido = d.Apellido
	}
	if d.Rol != "" {
		f.Datos.Rol = d.Rol
	}
	if d.AnioSeccion != "" {
		f.Datos.AnioSeccion = d.AnioSeccion
	}
	if d.Direccion != "" {
		f.Datos.Direccion = d.Direccion
	}
	f.Paso = PasoCandidato
	return f, nil
}

// CargarCandidatos trae los candidatos de la categoría y los reduce a
// los elegibles para el año y sección confirmados.
func (f Flujo) CargarCandidatos(p Padron) (Flujo, error) {
	if f.Paso != PasoCandidato {
		return f, ErrPasoInvalido
	}
	todos, err := p.CandidatosPorTipo(f.Tipo)
	if err != nil {
		return f, err
	}
	f.Candidatos = Elegibles(todos, f.Tipo, f.Datos.AnioSeccion)
	return f, nil
}

// Votar arma el voto con los datos confirmados y lo registra. Con la
// lista de elegibles vacía el voto queda bloqueado antes de tocar la
// urna. Un rechazo (voto duplicado incluido) deja el flujo en el paso
// de candidato.
func (f Flujo) Votar(u Urna, candidatoID uint, eleccionID *uint) (Flujo, error) {
	if f.Paso != PasoCandidato {
		return f, ErrPasoInvalido
	}
	if len(f.Candidatos) == 0 {
		return f, ErrSinCandidatos
	}
	elegible := false
	for _, c := range f.Candidatos {
		if c.ID == candidatoID {
			elegible = true
			break
		}
	}
	if !elegible {
		return f, ErrCandidatoNoElegible
	}

	v := &models.Votacion{
		Cedula:       f.Datos.Cedula,
		Nombre:       f.Datos.Nombre,
		Apellido:     f.Datos.Apellido,
		Rol:          f.Datos.Rol,
		AnioSeccion:  f.Datos.AnioSeccion,
		Direccion:    f.Datos.Direccion,
		CandidatoID:  candidatoID,
		EleccionID:   eleccionID,
		TipoEleccion: f.Tipo,
	}
	if err := u.Registrar(v); err != nil {
		return f, err
	}
	f.Voto = v
	f.Paso = PasoFinalizado
	return f, nil
}

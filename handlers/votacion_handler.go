package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
	"github.com/whygabriel1/rccwebpage87/voting"
)

type VotacionHandler struct{}

func NewVotacionHandler() *VotacionHandler { return &VotacionHandler{} }

func ledger() *voting.Ledger { return &voting.Ledger{DB: database.DB} }

type votacionPayload struct {
	Cedula       string `json:"cedula"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Rol          string `json:"rol"`
	AnioSeccion  string `json:"anioSeccion"`
	Direccion    string `json:"direccion"`
	CandidatoID  uint   `json:"candidatoId"`
	EleccionID   *uint  `json:"eleccionId"`
	TipoEleccion string `json:"tipoEleccion"`
}

func (p *votacionPayload) normalize() {
	p.Cedula = strings.TrimSpace(p.Cedula)
	p.Nombre = strings.Join(strings.Fields(p.Nombre), " ")
	p.Apellido = strings.Join(strings.Fields(p.Apellido), " ")
	p.Rol = strings.TrimSpace(p.Rol)
	p.AnioSeccion = strings.ToUpper(strings.TrimSpace(p.AnioSeccion))
	p.Direccion = strings.TrimSpace(p.Direccion)
	p.TipoEleccion = strings.TrimSpace(p.TipoEleccion)
}

// Todos los campos obligatorios salvo eleccionId.
func validateVotacion(p *votacionPayload) map[string]string {
	errs := map[string]string{}
	if p.Cedula == "" {
		errs["cedula"] = "La cédula es obligatoria"
	}
	if p.Nombre == "" {
		errs["nombre"] = "El nombre es obligatorio"
	}
	if p.Apellido == "" {
		errs["apellido"] = "El apellido es obligatorio"
	}
	if p.Rol == "" {
		errs["rol"] = "El rol es obligatorio"
	}
	if p.AnioSeccion == "" {
		errs["anioSeccion"] = "Año y sección son obligatorios"
	}
	if p.Direccion == "" {
		errs["direccion"] = "La dirección es obligatoria"
	}
	if p.CandidatoID == 0 {
		errs["candidatoId"] = "El candidato es obligatorio"
	}
	if !voting.TipoValido(p.TipoEleccion) {
		errs["tipoEleccion"] = "Tipo de elección inválido (estudiantiles, carnaval, vocero)"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /api/votaciones
func (h *VotacionHandler) List(c echo.Context) error {
	var items []models.Votacion
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching votaciones"})
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/votaciones/tipo/:tipo
func (h *VotacionHandler) ListByTipo(c echo.Context) error {
	tipo := c.Param("tipo")
	var items []models.Votacion
	if err := database.DB.Where("tipo_eleccion = ?", tipo).Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching votaciones by tipo"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /api/votaciones
// Registro de voto: chequeo-e-inserción atómicos en el Ledger. No hay
// PUT ni DELETE de votos: el registro es de solo-inserción.
func (h *VotacionHandler) Create(c echo.Context) error {
	var p votacionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	p.normalize()
	if errs := validateVotacion(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}

	v := models.Votacion{
		Cedula:       p.Cedula,
		Nombre:       p.Nombre,
		Apellido:     p.Apellido,
		Rol:          p.Rol,
		AnioSeccion:  p.AnioSeccion,
		Direccion:    p.Direccion,
		CandidatoID:  p.CandidatoID,
		EleccionID:   p.EleccionID,
		TipoEleccion: p.TipoEleccion,
	}
	if err := ledger().Registrar(&v); err != nil {
		switch {
		case errors.Is(err, voting.ErrVotoDuplicado):
			return c.JSON(http.StatusBadRequest, map[string]any{"message": "Este estudiante ya ha votado en esta elección."})
		case errors.Is(err, voting.ErrCandidatoInvalido):
			return c.JSON(http.StatusBadRequest, map[string]any{
				"message": "Validation error",
				"fields":  map[string]string{"candidatoId": "El candidato no existe o está inactivo"},
			})
		case errors.Is(err, voting.ErrEleccionInexistente):
			return c.JSON(http.StatusBadRequest, map[string]any{
				"message": "Validation error",
				"fields":  map[string]string{"eleccionId": "La elección no existe"},
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating votacion"})
		}
	}
	return c.JSON(http.StatusCreated, v)
}

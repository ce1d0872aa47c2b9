package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
	"github.com/whygabriel1/rccwebpage87/voting"
)

type CandidatoHandler struct{}

func NewCandidatoHandler() *CandidatoHandler { return &CandidatoHandler{} }

var (
	candReGrado   = regexp.MustCompile(`^[1-9]$`)
	candReSeccion = regexp.MustCompile(`^[A-Za-z]$`)
)

type candidatoPayload struct {
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Grado        string `json:"grado"`
	Seccion      string `json:"seccion"`
	TipoEleccion string `json:"tipoEleccion"`
	Activo       *bool  `json:"activo"`
}

func (p *candidatoPayload) normalize() {
	p.Nombre = strings.Join(strings.Fields(p.Nombre), " ")
	p.Apellido = strings.Join(strings.Fields(p.Apellido), " ")
	p.Grado = strings.TrimSpace(p.Grado)
	p.Seccion = strings.ToUpper(strings.TrimSpace(p.Seccion))
	p.TipoEleccion = strings.TrimSpace(p.TipoEleccion)
}

func validateCandidato(p *candidatoPayload) map[string]string {
	errs := map[string]string{}
	if p.Nombre == "" {
		errs["nombre"] = "El nombre es obligatorio"
	}
	if p.Apellido == "" {
		errs["apellido"] = "El apellido es obligatorio"
	}
	if !candReGrado.MatchString(p.Grado) {
		errs["grado"] = "El grado debe ser un dígito (1-9)"
	}
	if !candReSeccion.MatchString(p.Seccion) {
		errs["seccion"] = "La sección debe ser una letra"
	}
	if !voting.TipoValido(p.TipoEleccion) {
		errs["tipoEleccion"] = "Tipo de elección inválido (estudiantiles, carnaval, vocero)"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /api/candidatos
func (h *CandidatoHandler) List(c echo.Context) error {
	var items []models.Candidato
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching candidatos"})
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/candidatos/tipo/:tipo
func (h *CandidatoHandler) ListByTipo(c echo.Context) error {
	tipo := c.Param("tipo")
	var items []models.Candidato
	if err := database.DB.Where("tipo_eleccion = ?", tipo).Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching candidatos by tipo"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /api/candidatos
func (h *CandidatoHandler) Create(c echo.Context) error {
	var p candidatoPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	p.normalize()
	if errs := validateCandidato(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	cand := models.Candidato{
		Nombre:       p.Nombre,
		Apellido:     p.Apellido,
		Grado:        p.Grado,
		Seccion:      p.Seccion,
		TipoEleccion: p.TipoEleccion,
		Activo:       p.Activo,
	}
	if err := database.DB.Create(&cand).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating candidato"})
	}
	return c.JSON(http.StatusCreated, cand)
}

// PUT /api/candidatos/:id
func (h *CandidatoHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.Candidato
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Candidato not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching candidato"})
	}
	var p candidatoPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	p.normalize()
	if errs := validateCandidato(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	existing.Nombre = p.Nombre
	existing.Apellido = p.Apellido
	existing.Grado = p.Grado
	existing.Seccion = p.Seccion
	existing.TipoEleccion = p.TipoEleccion
	if p.Activo != nil {
		existing.Activo = p.Activo
	}
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error updating candidato"})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/candidatos/:id
func (h *CandidatoHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Candidato{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error deleting candidato"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Candidato not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Candidato deleted successfully"})
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
	"github.com/whygabriel1/rccwebpage87/voting"
)

type EleccionHandler struct {
	// Ahora permite fijar el reloj en tests; nil = time.Now.
	Ahora func() time.Time
}

func NewEleccionHandler() *EleccionHandler { return &EleccionHandler{} }

func (h *EleccionHandler) ahora() time.Time {
	if h.Ahora != nil {
		return h.Ahora()
	}
	return time.Now()
}

type eleccionPayload struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"` // YYYY-MM-DD, opcional
}

func validateEleccion(p *eleccionPayload) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.Nombre) == "" {
		errs["nombre"] = "El nombre es obligatorio"
	}
	if p.Fecha != "" {
		if _, err := time.Parse("2006-01-02", p.Fecha); err != nil {
			errs["fecha"] = "La fecha debe ser YYYY-MM-DD"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /api/elecciones
func (h *EleccionHandler) List(c echo.Context) error {
	var items []models.Eleccion
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching elecciones"})
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/elecciones/disponibilidad/:tipo
// Regla de calendario pura: nada persistido, se evalúa al momento.
func (h *EleccionHandler) Disponibilidad(c echo.Context) error {
	tipo := c.Param("tipo")
	disponible, mensaje := voting.Disponibilidad(tipo, h.ahora())
	return c.JSON(http.StatusOK, map[string]any{
		"tipoEleccion": tipo,
		"disponible":   disponible,
		"mensaje":      mensaje,
	})
}

// POST /api/elecciones
func (h *EleccionHandler) Create(c echo.Context) error {
	var p eleccionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	if errs := validateEleccion(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	el := models.Eleccion{
		Nombre:      strings.TrimSpace(p.Nombre),
		Descripcion: strings.TrimSpace(p.Descripcion),
	}
	if p.Fecha != "" {
		f, _ := time.Parse("2006-01-02", p.Fecha)
		el.Fecha = f
	}
	if err := database.DB.Create(&el).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating eleccion"})
	}
	return c.JSON(http.StatusCreated, el)
}

// PUT /api/elecciones/:id
func (h *EleccionHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.Eleccion
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Eleccion not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching eleccion"})
	}
	var p eleccionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	if errs := validateEleccion(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	existing.Nombre = strings.TrimSpace(p.Nombre)
	existing.Descripcion = strings.TrimSpace(p.Descripcion)
	if p.Fecha != "" {
		f, _ := time.Parse("2006-01-02", p.Fecha)
		existing.Fecha = f
	}
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error updating eleccion"})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/elecciones/:id
func (h *EleccionHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Eleccion{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error deleting eleccion"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Eleccion not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Eleccion deleted successfully"})
}

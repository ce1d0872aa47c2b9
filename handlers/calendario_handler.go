package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
)

type CalendarioHandler struct{}

func NewCalendarioHandler() *CalendarioHandler { return &CalendarioHandler{} }

type eventoPayload struct {
	Evento      string `json:"evento"`
	Fecha       string `json:"fecha"` // YYYY-MM-DD
	Categoria   string `json:"categoria"`
	Imagen      string `json:"imagen"`
	Descripcion string `json:"descripcion"`
}

func validateEvento(p *eventoPayload) (time.Time, map[string]string) {
	errs := map[string]string{}
	var fecha time.Time
	if strings.TrimSpace(p.Evento) == "" {
		errs["evento"] = "El evento es obligatorio"
	}
	if strings.TrimSpace(p.Categoria) == "" {
		errs["categoria"] = "La categoría es obligatoria"
	}
	if p.Fecha == "" {
		errs["fecha"] = "La fecha es obligatoria"
	} else {
		f, err := time.Parse("2006-01-02", p.Fecha)
		if err != nil {
			errs["fecha"] = "La fecha debe ser YYYY-MM-DD"
		} else {
			fecha = f
		}
	}
	if len(errs) == 0 {
		return fecha, nil
	}
	return fecha, errs
}

// GET /api/calendario
func (h *CalendarioHandler) List(c echo.Context) error {
	var items []models.Evento
	if err := database.DB.Order("fecha ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching calendario"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /api/calendario
func (h *CalendarioHandler) Create(c echo.Context) error {
	var p eventoPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	fecha, errs := validateEvento(&p)
	if errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	ev := models.Evento{
		Evento:      strings.TrimSpace(p.Evento),
		Fecha:       fecha,
		Categoria:   strings.TrimSpace(p.Categoria),
		Imagen:      strings.TrimSpace(p.Imagen),
		Descripcion: strings.TrimSpace(p.Descripcion),
	}
	if err := database.DB.Create(&ev).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating evento"})
	}
	return c.JSON(http.StatusCreated, ev)
}

// PUT /api/calendario/:id
func (h *CalendarioHandler) Update(c echo.Context) error {
	var existing models.Evento
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Evento not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching evento"})
	}
	var p eventoPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	fecha, errs := validateEvento(&p)
	if errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	existing.Evento = strings.TrimSpace(p.Evento)
	existing.Fecha = fecha
	existing.Categoria = strings.TrimSpace(p.Categoria)
	existing.Imagen = strings.TrimSpace(p.Imagen)
	existing.Descripcion = strings.TrimSpace(p.Descripcion)
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error updating evento"})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/calendario/:id
func (h *CalendarioHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Evento{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error deleting evento"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Evento not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Evento deleted successfully"})
}

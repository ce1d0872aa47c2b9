package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
)

type BibliotecaHandler struct{}

func NewBibliotecaHandler() *BibliotecaHandler { return &BibliotecaHandler{} }

type libroPayload struct {
	NombreLibro string `json:"nombreLibro"`
	Autor       string `json:"autor"`
	Portada     string `json:"portada"`
	Pdf         string `json:"pdf"`
	Materia     string `json:"materia"`
}

func (p *libroPayload) normalize() {
	p.NombreLibro = strings.TrimSpace(p.NombreLibro)
	p.Autor = strings.TrimSpace(p.Autor)
	p.Portada = strings.TrimSpace(p.Portada)
	p.Pdf = strings.TrimSpace(p.Pdf)
	p.Materia = strings.TrimSpace(p.Materia)
}

func validateLibro(p *libroPayload) map[string]string {
	errs := map[string]string{}
	if p.NombreLibro == "" {
		errs["nombreLibro"] = "El nombre del libro es obligatorio"
	}
	if p.Autor == "" {
		errs["autor"] = "El autor es obligatorio"
	}
	if p.Materia == "" {
		errs["materia"] = "La materia es obligatoria"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /api/biblioteca
func (h *BibliotecaHandler) List(c echo.Context) error {
	var items []models.Libro
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching biblioteca"})
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/biblioteca/:id
func (h *BibliotecaHandler) Get(c echo.Context) error {
	var libro models.Libro
	if err := database.DB.First(&libro, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Libro not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching libro"})
	}
	return c.JSON(http.StatusOK, libro)
}

// POST /api/biblioteca
func (h *BibliotecaHandler) Create(c echo.Context) error {
	var p libroPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	p.normalize()
	if errs := validateLibro(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	libro := models.Libro{
		NombreLibro: p.NombreLibro,
		Autor:       p.Autor,
		Portada:     p.Portada,
		Pdf:         p.Pdf,
		Materia:     p.Materia,
	}
	if err := database.DB.Create(&libro).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating libro"})
	}
	return c.JSON(http.StatusCreated, libro)
}

// PUT /api/biblioteca/:id
func (h *BibliotecaHandler) Update(c echo.Context) error {
	var existing models.Libro
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Libro not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching libro"})
	}
	var p libroPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	p.normalize()
	if errs := validateLibro(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	existing.NombreLibro = p.NombreLibro
	existing.Autor = p.Autor
	existing.Portada = p.Portada
	existing.Pdf = p.Pdf
	existing.Materia = p.Materia
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error updating libro"})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/biblioteca/:id
func (h *BibliotecaHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Libro{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error deleting libro"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Libro not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Libro deleted successfully"})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
)

type ArticuloHandler struct{}

func NewArticuloHandler() *ArticuloHandler { return &ArticuloHandler{} }

type articuloPayload struct {
	Titulo    string `json:"titulo"`
	Contenido string `json:"contenido"`
	Autor     string `json:"autor"`
	Categoria string `json:"categoria"`
	Imagen    string `json:"imagen"`
}

func validateArticulo(p *articuloPayload) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.Titulo) == "" {
		errs["titulo"] = "El título es obligatorio"
	}
	if strings.TrimSpace(p.Contenido) == "" {
		errs["contenido"] = "El contenido es obligatorio"
	}
	if strings.TrimSpace(p.Autor) == "" {
		errs["autor"] = "El autor es obligatorio"
	}
	if strings.TrimSpace(p.Categoria) == "" {
		errs["categoria"] = "La categoría es obligatoria"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /api/articulos
func (h *ArticuloHandler) List(c echo.Context) error {
	var items []models.Articulo
	if err := database.DB.Order("id DESC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching articulos"})
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/articulos/:id
func (h *ArticuloHandler) Get(c echo.Context) error {
	var art models.Articulo
	if err := database.DB.First(&art, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Articulo not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching articulo"})
	}
	return c.JSON(http.StatusOK, art)
}

// POST /api/articulos
func (h *ArticuloHandler) Create(c echo.Context) error {
	var p articuloPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	if errs := validateArticulo(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	art := models.Articulo{
		Titulo:    strings.TrimSpace(p.Titulo),
		Contenido: p.Contenido,
		Autor:     strings.TrimSpace(p.Autor),
		Categoria: strings.TrimSpace(p.Categoria),
		Imagen:    strings.TrimSpace(p.Imagen),
	}
	if err := database.DB.Create(&art).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating articulo"})
	}
	return c.JSON(http.StatusCreated, art)
}

// PUT /api/articulos/:id
func (h *ArticuloHandler) Update(c echo.Context) error {
	var existing models.Articulo
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Articulo not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching articulo"})
	}
	var p articuloPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	if errs := validateArticulo(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	existing.Titulo = strings.TrimSpace(p.Titulo)
	existing.Contenido = p.Contenido
	existing.Autor = strings.TrimSpace(p.Autor)
	existing.Categoria = strings.TrimSpace(p.Categoria)
	existing.Imagen = strings.TrimSpace(p.Imagen)
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error updating articulo"})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/articulos/:id
func (h *ArticuloHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Articulo{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error deleting articulo"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Articulo not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Articulo deleted successfully"})
}

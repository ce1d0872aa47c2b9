package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
)

type GaleriaHandler struct{}

func NewGaleriaHandler() *GaleriaHandler { return &GaleriaHandler{} }

type imagenPayload struct {
	Imagen    string `json:"imagen"`
	Categoria string `json:"categoria"`
	Nombre    string `json:"nombre"`
}

func validateImagen(p *imagenPayload) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.Imagen) == "" {
		errs["imagen"] = "La imagen es obligatoria"
	}
	if strings.TrimSpace(p.Categoria) == "" {
		errs["categoria"] = "La categoría es obligatoria"
	}
	if strings.TrimSpace(p.Nombre) == "" {
		errs["nombre"] = "El nombre es obligatorio"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /api/galeria
func (h *GaleriaHandler) List(c echo.Context) error {
	var items []models.Imagen
	if err := database.DB.Order("id DESC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching galeria"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /api/galeria
func (h *GaleriaHandler) Create(c echo.Context) error {
	var p imagenPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	if errs := validateImagen(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	img := models.Imagen{
		Imagen:    strings.TrimSpace(p.Imagen),
		Categoria: strings.TrimSpace(p.Categoria),
		Nombre:    strings.TrimSpace(p.Nombre),
	}
	if err := database.DB.Create(&img).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating imagen"})
	}
	return c.JSON(http.StatusCreated, img)
}

// PUT /api/galeria/:id
func (h *GaleriaHandler) Update(c echo.Context) error {
	var existing models.Imagen
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Imagen not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching imagen"})
	}
	var p imagenPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	if errs := validateImagen(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	existing.Imagen = strings.TrimSpace(p.Imagen)
	existing.Categoria = strings.TrimSpace(p.Categoria)
	existing.Nombre = strings.TrimSpace(p.Nombre)
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error updating imagen"})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/galeria/:id
func (h *GaleriaHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Imagen{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error deleting imagen"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Imagen not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Imagen deleted successfully"})
}

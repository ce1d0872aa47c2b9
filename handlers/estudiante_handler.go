package handlers

import (
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
)

type EstudianteHandler struct{}

func NewEstudianteHandler() *EstudianteHandler { return &EstudianteHandler{} }

var (
	estReCedula      = regexp.MustCompile(`^[0-9\.]{1,20}$`)
	estReAnioSeccion = regexp.MustCompile(`^[1-9][A-Za-z]$`) // ej. "5E"
)

type estudiantePayload struct {
	Cedula      string `json:"cedula"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	AnioSeccion string `json:"anioSeccion"`
	Direccion   string `json:"direccion"`
}

func (p *estudiantePayload) normalize() {
	p.Cedula = strings.TrimSpace(p.Cedula)
	p.Nombre = strings.Join(strings.Fields(p.Nombre), " ")
	p.Apellido = strings.Join(strings.Fields(p.Apellido), " ")
	p.AnioSeccion = strings.ToUpper(strings.TrimSpace(p.AnioSeccion))
	p.Direccion = strings.TrimSpace(p.Direccion)
}

func validateEstudiante(p *estudiantePayload) map[string]string {
	errs := map[string]string{}
	if !estReCedula.MatchString(p.Cedula) {
		errs["cedula"] = "La cédula debe ser numérica (hasta 20 caracteres)"
	}
	if p.Nombre == "" {
		errs["nombre"] = "El nombre es obligatorio"
	}
	if p.Apellido == "" {
		errs["apellido"] = "El apellido es obligatorio"
	}
	if !estReAnioSeccion.MatchString(p.AnioSeccion) {
		errs["anioSeccion"] = "Año y sección deben tener el formato 5E"
	}
	if p.Direccion == "" {
		errs["direccion"] = "La dirección es obligatoria"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *estudiantePayload) toModel() models.Estudiante {
	return models.Estudiante{
		Cedula:      p.Cedula,
		Nombre:      p.Nombre,
		Apellido:    p.Apellido,
		AnioSeccion: p.AnioSeccion,
		Direccion:   p.Direccion,
	}
}

// GET /api/estudiantes
func (h *EstudianteHandler) List(c echo.Context) error {
	var items []models.Estudiante
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching estudiantes"})
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/estudiantes/cedula/:cedula
func (h *EstudianteHandler) GetByCedula(c echo.Context) error {
	cedula := c.Param("cedula")
	var est models.Estudiante
	if err := database.DB.Where("cedula = ?", cedula).First(&est).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Estudiante no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error buscando estudiante"})
	}
	return c.JSON(http.StatusOK, est)
}

// GET /api/estudiantes/anios-secciones
// Valores únicos de año+sección, ordenados (para los filtros del panel).
func (h *EstudianteHandler) AniosSecciones(c echo.Context) error {
	var valores []string
	if err := database.DB.Model(&models.Estudiante{}).
		Distinct("anio_seccion").Pluck("anio_seccion", &valores).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error obteniendo años y secciones"})
	}
	sort.Strings(valores)
	return c.JSON(http.StatusOK, valores)
}

// POST /api/estudiantes
func (h *EstudianteHandler) Create(c echo.Context) error {
	var p estudiantePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	p.normalize()
	if errs := validateEstudiante(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	est := p.toModel()
	if err := database.DB.Create(&est).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			return c.JSON(http.StatusBadRequest, map[string]any{"message": "Ya existe un estudiante con esa cédula"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error creating estudiante"})
	}
	return c.JSON(http.StatusCreated, est)
}

// PUT /api/estudiantes/:id
func (h *EstudianteHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.Estudiante
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Estudiante no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching estudiante"})
	}
	var p estudiantePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	p.normalize()
	if errs := validateEstudiante(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "fields": errs})
	}
	existing.Cedula = p.Cedula
	existing.Nombre = p.Nombre
	existing.Apellido = p.Apellido
	existing.AnioSeccion = p.AnioSeccion
	existing.Direccion = p.Direccion
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error updating estudiante"})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/estudiantes/:id
func (h *EstudianteHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Estudiante{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error deleting estudiante"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Estudiante no encontrado"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Estudiante deleted successfully"})
}

// POST /api/estudiantes/import
// Carga masiva: valida todo el lote antes de insertar.
func (h *EstudianteHandler) Import(c echo.Context) error {
	var arr []estudiantePayload
	if err := c.Bind(&arr); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error"})
	}
	var inserted []models.Estudiante
	issues := []map[string]any{}

	for i := range arr {
		p := arr[i]
		p.normalize()
		if errs := validateEstudiante(&p); errs != nil {
			issues = append(issues, map[string]any{"index": i, "fields": errs})
			continue
		}
		inserted = append(inserted, p.toModel())
	}
	if len(issues) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Validation error", "issues": issues})
	}
	if len(inserted) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Lote vacío"})
	}
	if err := database.DB.Create(&inserted).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error importing estudiantes"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"inserted": len(inserted)})
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/voting"
)

type EstadisticaHandler struct{}

func NewEstadisticaHandler() *EstadisticaHandler { return &EstadisticaHandler{} }

// GET /api/estadisticas?anioSeccion=5E&tipoEleccion=estudiantiles
// Acepta anioSeccion compuesto o anio+seccion por separado; los dos
// caminos producen el mismo filtro.
func (h *EstadisticaHandler) Get(c echo.Context) error {
	f := voting.FiltroDesdeParams(
		c.QueryParam("anioSeccion"),
		c.QueryParam("anio"),
		c.QueryParam("seccion"),
		c.QueryParam("tipoEleccion"),
	)

	porCandidato, err := voting.Tally(database.DB, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching estadisticas"})
	}
	total, porTipo, err := voting.Resumen(database.DB)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Error fetching estadisticas"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"totalVotos":        total,
		"votosPorTipo":      porTipo,
		"votosPorCandidato": porCandidato,
	})
}

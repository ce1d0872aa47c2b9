package routes

import (
	"os"

	"github.com/labstack/echo/v4"

	"github.com/whygabriel1/rccwebpage87/handlers"
	"github.com/whygabriel1/rccwebpage87/middlewares"
)

// Register arma todas las rutas HTTP del portal.
func Register(e *echo.Echo) {
	auth := handlers.NewAuthHandler()
	est := handlers.NewEstudianteHandler()
	cand := handlers.NewCandidatoHandler()
	elec := handlers.NewEleccionHandler()
	voto := handlers.NewVotacionHandler()
	stats := handlers.NewEstadisticaHandler()
	bib := handlers.NewBibliotecaHandler()
	cal := handlers.NewCalendarioHandler()
	gal := handlers.NewGaleriaHandler()
	art := handlers.NewArticuloHandler()

	e.GET("/health", handlers.Health)

	// ===== Público =====
	e.POST("/api/login", auth.Login)

	e.GET("/api/estudiantes/cedula/:cedula", est.GetByCedula)
	e.GET("/api/estudiantes/anios-secciones", est.AniosSecciones)

	e.GET("/api/candidatos", cand.List)
	e.GET("/api/candidatos/tipo/:tipo", cand.ListByTipo)

	e.GET("/api/elecciones", elec.List)
	e.GET("/api/elecciones/disponibilidad/:tipo", elec.Disponibilidad)

	// Votos: solo lectura y registro; no existe PUT ni DELETE.
	e.GET("/api/votaciones", voto.List)
	e.GET("/api/votaciones/tipo/:tipo", voto.ListByTipo)
	e.POST("/api/votaciones", voto.Create)

	e.GET("/api/estadisticas", stats.Get)

	e.GET("/api/biblioteca", bib.List)
	e.GET("/api/biblioteca/:id", bib.Get)
	e.GET("/api/calendario", cal.List)
	e.GET("/api/galeria", gal.List)
	e.GET("/api/articulos", art.List)
	e.GET("/api/articulos/:id", art.Get)

	// ===== Admin (JWT + rol admin) =====
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}
	admin := e.Group("/api", middlewares.RequireAuth(secret), middlewares.RequireRole("admin"))

	admin.GET("/admin", auth.ListAdmins)
	admin.POST("/admin", auth.CreateAdmin)

	admin.GET("/estudiantes", est.List)
	admin.POST("/estudiantes", est.Create)
	admin.POST("/estudiantes/import", est.Import)
	admin.PUT("/estudiantes/:id", est.Update)
	admin.DELETE("/estudiantes/:id", est.Delete)

	admin.POST("/candidatos", cand.Create)
	admin.PUT("/candidatos/:id", cand.Update)
	admin.DELETE("/candidatos/:id", cand.Delete)

	admin.POST("/elecciones", elec.Create)
	admin.PUT("/elecciones/:id", elec.Update)
	admin.DELETE("/elecciones/:id", elec.Delete)

	admin.POST("/biblioteca", bib.Create)
	admin.PUT("/biblioteca/:id", bib.Update)
	admin.DELETE("/biblioteca/:id", bib.Delete)

	admin.POST("/calendario", cal.Create)
	admin.PUT("/calendario/:id", cal.Update)
	admin.DELETE("/calendario/:id", cal.Delete)

	admin.POST("/galeria", gal.Create)
	admin.PUT("/galeria/:id", gal.Update)
	admin.DELETE("/galeria/:id", gal.Delete)

	admin.POST("/articulos", art.Create)
	admin.PUT("/articulos/:id", art.Update)
	admin.DELETE("/articulos/:id", art.Delete)
}

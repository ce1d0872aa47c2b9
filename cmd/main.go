package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/whygabriel1/rccwebpage87/config"
	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/routes"
)

func main() {
	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg := config.Load()

	// si la DB no está arriba el programa falla de una (early fail)
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/config"
	"github.com/whygabriel1/rccwebpage87/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError: las violaciones de índice único llegan como
	// gorm.ErrDuplicatedKey (el voto duplicado depende de esto).
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate crea/actualiza el esquema completo del portal. Lo usan
// Connect y los tests (con sqlite en memoria).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Estudiante{},
		&models.Candidato{},
		&models.Eleccion{},
		&models.Votacion{},
		&models.Libro{},
		&models.Evento{},
		&models.Imagen{},
		&models.Articulo{},
	)
}

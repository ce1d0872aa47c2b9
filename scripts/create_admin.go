// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/config"
	"github.com/whygabriel1/rccwebpage87/database"
	"github.com/whygabriel1/rccwebpage87/models"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	database.Connect(cfg)

	username := os.Getenv("ADMIN_USER")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASS")
	if password == "" {
		password = "cambiar123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.Admin
	if err := database.DB.Where("nombre_usuario = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query admin: %v", err)
		}
	} else {
		fmt.Println("ya existe un admin con ese usuario:", username)
		os.Exit(0)
	}

	adm := models.Admin{NombreUsuario: username, Clave: string(hashed)}
	if err := database.DB.Create(&adm).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin creado:")
	fmt.Println("   usuario:", username)
	fmt.Println("   clave:", password, "(cambiarla después del primer login)")
}

package voting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/models"
)

// Almacen implementa Directorio y Padron sobre GORM.
type Almacen struct {
	DB *gorm.DB
}

func (a *Almacen) EstudiantePorCedula(cedula string) (*models.Estudiante, error) {
	var est models.Estudiante
	if err := a.DB.Where("cedula = ?", cedula).First(&est).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &est, nil
}

func (a *Almacen) CandidatosPorTipo(tipo string) ([]models.Candidato, error) {
	var out []models.Candidato
	err := a.DB.Where("tipo_eleccion = ?", tipo).Find(&out).Error
	return out, err
}

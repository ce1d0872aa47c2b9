package models

import "time"

// Imagen de la galería.
type Imagen struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Imagen        string    `json:"imagen" gorm:"not null"` // URL
	Categoria     string    `json:"categoria" gorm:"not null"`
	Nombre        string    `json:"nombre" gorm:"not null"`
	FechaCreacion time.Time `json:"fechaCreacion" gorm:"column:fecha_creacion;autoCreateTime"`
}

func (Imagen) TableName() string { return "galeria" }

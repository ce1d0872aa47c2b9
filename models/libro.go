package models

import "time"

type Libro struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	NombreLibro   string    `json:"nombreLibro" gorm:"column:nombre_libro;not null"`
	Autor         string    `json:"autor" gorm:"not null"`
	Portada       string    `json:"portada"` // URL de la portada
	Pdf           string    `json:"pdf"`     // URL del PDF
	Materia       string    `json:"materia" gorm:"not null"`
	FechaCreacion time.Time `json:"fechaCreacion" gorm:"column:fecha_creacion;autoCreateTime"`
}

func (Libro) TableName() string { return "biblioteca" }

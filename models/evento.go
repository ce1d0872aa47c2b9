package models

import "time"

// Evento del calendario escolar.
type Evento struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Evento      string    `json:"evento" gorm:"not null"`
	Fecha       time.Time `json:"fecha" gorm:"not null"`
	Categoria   string    `json:"categoria" gorm:"not null"`
	Imagen      string    `json:"imagen"`
	Descripcion string    `json:"descripcion"`
}

func (Evento) TableName() string { return "calendario" }

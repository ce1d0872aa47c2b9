package models

import "time"

// Eleccion es la campaña nombrada (ej. "Elección Estudiantil 2024");
// el tipo de elección es la categoría gruesa y vive en cada voto.
type Eleccion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nombre      string    `json:"nombre" gorm:"not null"`
	Descripcion string    `json:"descripcion"`
	Fecha       time.Time `json:"fecha" gorm:"autoCreateTime"`
}

func (Eleccion) TableName() string { return "elecciones" }

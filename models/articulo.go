package models

import "time"

type Articulo struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Titulo        string    `json:"titulo" gorm:"not null"`
	Contenido     string    `json:"contenido" gorm:"type:text;not null"`
	Autor         string    `json:"autor" gorm:"not null"`
	Categoria     string    `json:"categoria" gorm:"not null"`
	Imagen        string    `json:"imagen"`
	FechaCreacion time.Time `json:"fechaCreacion" gorm:"column:fecha_creacion;autoCreateTime"`
}

func (Articulo) TableName() string { return "articulos" }

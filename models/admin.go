package models

type Admin struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	NombreUsuario string `json:"nombreUsuario" gorm:"column:nombre_usuario;uniqueIndex;size:60;not null"`
	Clave         string `json:"-" gorm:"not null"` // hash bcrypt
}

func (Admin) TableName() string { return "admin" }

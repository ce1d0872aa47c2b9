package models

// Estudiante es data de referencia: se carga por importación y el flujo
// de votación solo la lee.
type Estudiante struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Cedula      string `json:"cedula" gorm:"size:20;uniqueIndex;not null"`
	Nombre      string `json:"nombre" gorm:"not null"`
	Apellido    string `json:"apellido" gorm:"not null"`
	AnioSeccion string `json:"anioSeccion" gorm:"column:anio_seccion;size:10;not null"` // ej. "5E"
	Direccion   string `json:"direccion" gorm:"type:text;not null"`
}

func (Estudiante) TableName() string { return "estudiantes" }

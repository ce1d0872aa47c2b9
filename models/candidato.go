package models

type Candidato struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Nombre       string `json:"nombre" gorm:"not null"`
	Apellido     string `json:"apellido" gorm:"not null"`
	Grado        string `json:"grado" gorm:"size:5;not null"`   // año, un dígito
	Seccion      string `json:"seccion" gorm:"size:5;not null"` // letra de sección
	TipoEleccion string `json:"tipoEleccion" gorm:"column:tipo_eleccion;size:20;index;not null"`
	Activo       *bool  `json:"activo" gorm:"default:true"`
}

func (Candidato) TableName() string { return "candidatos" }

// EsActivo trata el default NULL de filas viejas como activo.
func (c *Candidato) EsActivo() bool { return c.Activo == nil || *c.Activo }

package models

import "time"

// Votacion es un registro de solo-inserción: nunca se actualiza ni se
// borra. El índice único compuesto cierra la carrera de doble voto a
// nivel de motor, además del chequeo explícito previo al insert.
type Votacion struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Cedula       string    `json:"cedula" gorm:"size:20;not null;uniqueIndex:idx_votaciones_cedula_tipo"`
	Nombre       string    `json:"nombre" gorm:"not null"`
	Apellido     string    `json:"apellido" gorm:"not null"`
	Rol          string    `json:"rol" gorm:"not null"`
	AnioSeccion  string    `json:"anioSeccion" gorm:"column:anio_seccion;size:10;not null"`
	Direccion    string    `json:"direccion" gorm:"type:text;not null"`
	CandidatoID  uint      `json:"candidatoId" gorm:"column:candidato_id;not null"`
	EleccionID   *uint     `json:"eleccionId" gorm:"column:eleccion_id"`
	TipoEleccion string    `json:"tipoEleccion" gorm:"column:tipo_eleccion;size:20;not null;uniqueIndex:idx_votaciones_cedula_tipo"`
	FechaVoto    time.Time `json:"fechaVoto" gorm:"column:fecha_voto;autoCreateTime"`
}

func (Votacion) TableName() string { return "votaciones" }

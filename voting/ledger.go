package voting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/models"
)

var (
	// ErrVotoDuplicado: ya existe un voto con esa cédula y tipo.
	ErrVotoDuplicado = errors.New("el estudiante ya ha votado en esta elección")
	// ErrCandidatoInvalido: el candidato no existe o está inactivo.
	ErrCandidatoInvalido = errors.New("candidato inexistente o inactivo")
	// ErrEleccionInexistente: el eleccionId referenciado no existe.
	ErrEleccionInexistente = errors.New("elección inexistente")
)

// Ledger registra votos. Un voto por (cédula, tipo de elección): el
// chequeo de existencia corre dentro de la misma transacción que el
// insert, y el índice único de votaciones cubre la carrera restante
// entre transacciones concurrentes.
type Ledger struct {
	DB *gorm.DB
}

// Registrar valida referencias, aplica la regla de voto único e
// inserta. FechaVoto la asigna el servidor (autoCreateTime).
func (l *Ledger) Registrar(v *models.Votacion) error {
	return l.DB.Transaction(func(tx *gorm.DB) error {
		var cand models.Candidato
		if err := tx.First(&cand, "id = ?", v.CandidatoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCandidatoInvalido
			}
			return err
		}
		if !cand.EsActivo() {
			return ErrCandidatoInvalido
		}

		if v.EleccionID != nil {
			var el models.Eleccion
			if err := tx.First(&el, "id = ?", *v.EleccionID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrEleccionInexistente
				}
				return err
			}
		}

		var prev models.Votacion
		err := tx.Where("cedula = ? AND tipo_eleccion = ?", v.Cedula, v.TipoEleccion).
			First(&prev).Error
		if err == nil {
			return ErrVotoDuplicado
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(v).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrVotoDuplicado
			}
			return err
		}
		return nil
	})
}

// YaVoto consulta si la cédula ya emitió un voto de ese tipo.
func (l *Ledger) YaVoto(cedula, tipo string) (bool, error) {
	var n int64
	err := l.DB.Model(&models.Votacion{}).
		Where("cedula = ? AND tipo_eleccion = ?", cedula, tipo).
		Count(&n).Error
	return n > 0, err
}

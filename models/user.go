package models

import "time"

// User es una cuenta regular del portal (rol "user"); las cuentas con
// privilegios administrativos viven en la tabla admin.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password  string    `json:"-" gorm:"not null"` // hash bcrypt
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

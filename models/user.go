package models

import "time"

// DefaultStartingPoints is the balance a user starts with on their first spin.
const DefaultStartingPoints = 100

// User is a wheel player. The ID is an opaque, caller-supplied string; rows
// are created lazily on first spin and mutated only by the spin transaction.
type User struct {
	ID              string     `gorm:"primaryKey;size:50" json:"id"`
	Puntos          int        `gorm:"not null;default:100" json:"puntos"`
	GirosRealizados int        `gorm:"not null;default:0" json:"giros_realizados"`
	Nivel           int        `gorm:"not null;default:1" json:"nivel"`
	Experiencia     int        `gorm:"not null;default:0" json:"experiencia"`
	FechaRegistro   time.Time  `gorm:"autoCreateTime" json:"fecha_registro"`
	UltimoGiro      *time.Time `json:"ultimo_giro,omitempty"`
}

func (User) TableName() string {
	return "usuarios"
}

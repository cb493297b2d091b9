package models

import "time"

// Prize categories accepted by the catalog.
const (
	TipoPrize    = "prize"
	TipoPenalty  = "penalty"
	TipoBonus    = "bonus"
	TipoWildcard = "wildcard"
)

// ValidTipo reports whether t is one of the known prize categories.
func ValidTipo(t string) bool {
	switch t {
	case TipoPrize, TipoPenalty, TipoBonus, TipoWildcard:
		return true
	}
	return false
}

// Prize is a catalog item on the wheel. Probabilidad is relative selection
// weight, not a percentage. Stock <= 0 means unlimited; a prize whose stock
// hits exactly zero during a spin is deactivated in the same transaction.
type Prize struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nombre       string    `gorm:"size:100;not null" json:"nombre"`
	Tipo         string    `gorm:"size:20;not null" json:"tipo"`
	Puntos       int       `gorm:"not null;default:0" json:"puntos"`
	Stock        int       `gorm:"not null;default:1" json:"stock"`
	Probabilidad float64   `gorm:"not null;default:1" json:"probabilidad"`
	Activo       bool      `gorm:"not null;default:true" json:"activo"`
	ImagenURL    *string   `gorm:"size:200" json:"imagen_url,omitempty"`
	Color        string    `gorm:"size:7;default:'#4CAF50'" json:"color"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (Prize) TableName() string {
	return "productos"
}

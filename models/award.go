package models

import "time"

// Award records one won spin. It references its prize weakly: the prize may
// be deleted later and the award must still render, so no FK constraint and
// no preloaded relation.
type Award struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UsuarioID      string     `gorm:"size:50;not null;index" json:"usuario_id"`
	ProductoID     uint       `gorm:"not null;index" json:"producto_id"`
	FechaObtencion time.Time  `gorm:"autoCreateTime" json:"fecha_obtencion"`
	Canjeado       bool       `gorm:"not null;default:false" json:"canjeado"`
	FechaCanje     *time.Time `json:"fecha_canje,omitempty"`
}

func (Award) TableName() string {
	return "premios_obtenidos"
}

// AwardView is the admin listing shape: the award row joined with display
// fields of its prize when that prize still exists.
type AwardView struct {
	ID             uint       `json:"id"`
	UsuarioID      string     `json:"usuario_id"`
	ProductoID     uint       `json:"producto_id"`
	FechaObtencion *time.Time `json:"fecha_obtencion"`
	Canjeado       bool       `json:"canjeado"`
	FechaCanje     *time.Time `json:"fecha_canje,omitempty"`
	ProductoNombre *string    `json:"producto_nombre,omitempty"`
	ProductoTipo   *string    `json:"producto_tipo,omitempty"`
	ProductoPuntos *int       `json:"producto_puntos,omitempty"`
}

package database

import (
	"gorm.io/gorm"

	"github.com/Domotic593/Ruleta-Completa/models"
)

// Migrate creates or updates the three roulette tables. Migrations run
// inside a transaction where the driver supports it.
func Migrate(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.AutoMigrate(
		&models.Prize{},
		&models.User{},
		&models.Award{},
	); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// SeedDefaultCatalog inserts the reference wheel when the catalog is empty.
// No-op otherwise.
func SeedDefaultCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Prize{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Prize{
		{Nombre: "Premio Mayor", Tipo: models.TipoPrize, Puntos: 100, Stock: 1, Probabilidad: 0.05, Activo: true, Color: "#FFD700"},
		{Nombre: "Viaje a la Playa", Tipo: models.TipoPrize, Puntos: 80, Stock: 1, Probabilidad: 0.08, Activo: true, Color: "#4CAF50"},
		{Nombre: "Tarjeta Regalo $50", Tipo: models.TipoPrize, Puntos: 60, Stock: 1, Probabilidad: 0.1, Activo: true, Color: "#2196F3"},
		{Nombre: "Pierdes Turno", Tipo: models.TipoPenalty, Puntos: -10, Stock: 1, Probabilidad: 0.15, Activo: true, Color: "#F44336"},
		{Nombre: "Giro Extra", Tipo: models.TipoBonus, Puntos: 0, Stock: 1, Probabilidad: 0.07, Activo: true, Color: "#9C27B0"},
	}
	return db.Create(&defaults).Error
}

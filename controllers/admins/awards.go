package admins

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/Domotic593/Ruleta-Completa/models"
	"github.com/Domotic593/Ruleta-Completa/utils"
)

// GET /api/admin/premios
//
// Awards join their prize's display fields when that prize still exists; a
// deleted prize leaves those fields absent rather than failing the row.
func (c *Controller) ListAwardsHandler(w http.ResponseWriter, r *http.Request) {
	var views []models.AwardView
	err := c.db.
		Table("premios_obtenidos AS pr").
		Select(`pr.id, pr.usuario_id, pr.producto_id, pr.fecha_obtencion,
			pr.canjeado, pr.fecha_canje,
			p.nombre AS producto_nombre, p.tipo AS producto_tipo, p.puntos AS producto_puntos`).
		Joins("LEFT JOIN productos p ON pr.producto_id = p.id").
		Order("pr.id ASC").
		Scan(&views).Error
	if err != nil {
		log.Printf("[admin] list awards failed: %v", err)
		utils.WriteJSON(w, http.StatusOK, []models.AwardView{})
		return
	}
	if views == nil {
		views = []models.AwardView{}
	}
	utils.WriteJSON(w, http.StatusOK, views)
}

type createAwardRequest struct {
	UsuarioID  string `json:"usuario_id"`
	ProductoID uint   `json:"producto_id"`
}

// POST /api/admin/premios
//
// Manual override, independent of the spin flow: no stock or balance side
// effects.
func (c *Controller) CreateAwardHandler(w http.ResponseWriter, r *http.Request) {
	var req createAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}
	if req.UsuarioID == "" || req.ProductoID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "usuario_id y producto_id son obligatorios")
		return
	}

	award := models.Award{
		UsuarioID:      req.UsuarioID,
		ProductoID:     req.ProductoID,
		FechaObtencion: time.Now(),
	}
	if err := c.db.Create(&award).Error; err != nil {
		log.Printf("[admin] create award failed: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "No se pudo crear el premio")
		return
	}
	utils.WriteJSON(w, http.StatusOK, award)
}

type updateAwardRequest struct {
	UsuarioID  *string `json:"usuario_id"`
	ProductoID *uint   `json:"producto_id"`
	Canjeado   *bool   `json:"canjeado"`
}

// PUT /api/admin/premios/{id}
func (c *Controller) UpdateAwardHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	var award models.Award
	if err := c.db.First(&award, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Premio no encontrado")
			return
		}
		log.Printf("[admin] load award %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if req.UsuarioID != nil {
		award.UsuarioID = *req.UsuarioID
	}
	if req.ProductoID != nil {
		award.ProductoID = *req.ProductoID
	}
	if req.Canjeado != nil {
		award.Canjeado = *req.Canjeado
		if *req.Canjeado {
			now := time.Now()
			award.FechaCanje = &now
		}
	}

	if err := c.db.Model(&award).Select("*").Omit("id", "fecha_obtencion").Updates(award).Error; err != nil {
		log.Printf("[admin] update award %d failed: %v", id, err)
		utils.WriteError(w, http.StatusBadRequest, "No se pudo actualizar el premio")
		return
	}
	utils.WriteJSON(w, http.StatusOK, award)
}

// DELETE /api/admin/premios/{id}
func (c *Controller) DeleteAwardHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var award models.Award
	if err := c.db.First(&award, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Premio no encontrado")
			return
		}
		log.Printf("[admin] load award %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if err := c.db.Delete(&award).Error; err != nil {
		log.Printf("[admin] delete award %d failed: %v", id, err)
		utils.WriteError(w, http.StatusBadRequest, "No se pudo eliminar el premio")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.MessageResponse{Message: "Premio eliminado correctamente"})
}

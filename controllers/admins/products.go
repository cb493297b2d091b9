package admins

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/Domotic593/Ruleta-Completa/models"
	"github.com/Domotic593/Ruleta-Completa/utils"
	"github.com/Domotic593/Ruleta-Completa/wheel"
)

// Controller serves the admin surface: prize CRUD, award CRUD, aggregate
// counts and the leaderboard.
type Controller struct {
	db *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// PrizeAdminView is a Prize plus its normalized win percentage over the
// whole catalog.
type PrizeAdminView struct {
	models.Prize
	ProbabilidadNormalizada float64 `json:"probabilidad_normalizada"`
}

// GET /api/admin/productos
func (c *Controller) ListPrizesHandler(w http.ResponseWriter, r *http.Request) {
	var prizes []models.Prize
	if err := c.db.Order("id ASC").Find(&prizes).Error; err != nil {
		log.Printf("[admin] list prizes failed: %v", err)
		utils.WriteJSON(w, http.StatusOK, []PrizeAdminView{})
		return
	}

	chances := wheel.Chances(prizes)
	views := make([]PrizeAdminView, 0, len(prizes))
	for i, p := range prizes {
		views = append(views, PrizeAdminView{
			Prize:                   p,
			ProbabilidadNormalizada: utils.RoundFloat(chances[i], 2),
		})
	}
	utils.WriteJSON(w, http.StatusOK, views)
}

type createPrizeRequest struct {
	Nombre       string   `json:"nombre"`
	Tipo         string   `json:"tipo"`
	Puntos       *int     `json:"puntos"`
	Stock        *int     `json:"stock"`
	Probabilidad *float64 `json:"probabilidad"`
	Activo       *bool    `json:"activo"`
	ImagenURL    *string  `json:"imagen_url"`
	Color        *string  `json:"color"`
}

// POST /api/admin/productos
func (c *Controller) CreatePrizeHandler(w http.ResponseWriter, r *http.Request) {
	var req createPrizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	if strings.TrimSpace(req.Nombre) == "" {
		utils.WriteError(w, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}
	if !models.ValidTipo(req.Tipo) {
		utils.WriteError(w, http.StatusBadRequest, "Tipo de producto no válido")
		return
	}
	if req.Puntos == nil {
		utils.WriteError(w, http.StatusBadRequest, "Los puntos son obligatorios")
		return
	}

	prize := models.Prize{
		Nombre:       strings.TrimSpace(req.Nombre),
		Tipo:         req.Tipo,
		Puntos:       *req.Puntos,
		Stock:        1,
		Probabilidad: 1.0,
		Activo:       true,
		Color:        "#4CAF50",
		ImagenURL:    req.ImagenURL,
	}
	if req.Stock != nil {
		prize.Stock = *req.Stock
	}
	if req.Probabilidad != nil {
		prize.Probabilidad = *req.Probabilidad
	}
	if req.Activo != nil {
		prize.Activo = *req.Activo
	}
	if req.Color != nil {
		prize.Color = *req.Color
	}
	if prize.Activo && prize.Probabilidad <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "La probabilidad debe ser mayor que 0 para un producto activo")
		return
	}

	if err := c.db.Create(&prize).Error; err != nil {
		log.Printf("[admin] create prize failed: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "No se pudo crear el producto")
		return
	}
	utils.WriteJSON(w, http.StatusOK, prize)
}

type updatePrizeRequest struct {
	Nombre       *string  `json:"nombre"`
	Tipo         *string  `json:"tipo"`
	Puntos       *int     `json:"puntos"`
	Stock        *int     `json:"stock"`
	Probabilidad *float64 `json:"probabilidad"`
	Activo       *bool    `json:"activo"`
	ImagenURL    *string  `json:"imagen_url"`
	Color        *string  `json:"color"`
}

// PUT /api/admin/productos/{id}
func (c *Controller) UpdatePrizeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updatePrizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	var prize models.Prize
	if err := c.db.First(&prize, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Producto no encontrado")
			return
		}
		log.Printf("[admin] load prize %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if req.Nombre != nil {
		if strings.TrimSpace(*req.Nombre) == "" {
			utils.WriteError(w, http.StatusBadRequest, "El nombre es obligatorio")
			return
		}
		prize.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Tipo != nil {
		if !models.ValidTipo(*req.Tipo) {
			utils.WriteError(w, http.StatusBadRequest, "Tipo de producto no válido")
			return
		}
		prize.Tipo = *req.Tipo
	}
	if req.Puntos != nil {
		prize.Puntos = *req.Puntos
	}
	if req.Stock != nil {
		prize.Stock = *req.Stock
	}
	if req.Probabilidad != nil {
		prize.Probabilidad = *req.Probabilidad
	}
	if req.Activo != nil {
		prize.Activo = *req.Activo
	}
	if req.ImagenURL != nil {
		prize.ImagenURL = req.ImagenURL
	}
	if req.Color != nil {
		prize.Color = *req.Color
	}
	if prize.Activo && prize.Probabilidad <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "La probabilidad debe ser mayor que 0 para un producto activo")
		return
	}

	// Select("*") so zero values (stock 0, activo false) persist too.
	if err := c.db.Model(&prize).Select("*").Omit("id", "created_at").Updates(prize).Error; err != nil {
		log.Printf("[admin] update prize %d failed: %v", id, err)
		utils.WriteError(w, http.StatusBadRequest, "No se pudo actualizar el producto")
		return
	}
	utils.WriteJSON(w, http.StatusOK, prize)
}

// DELETE /api/admin/productos/{id}
func (c *Controller) DeletePrizeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var prize models.Prize
	if err := c.db.First(&prize, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Producto no encontrado")
			return
		}
		log.Printf("[admin] load prize %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if err := c.db.Delete(&prize).Error; err != nil {
		log.Printf("[admin] delete prize %d failed: %v", id, err)
		utils.WriteError(w, http.StatusBadRequest, "No se pudo eliminar el producto")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.MessageResponse{Message: "Producto eliminado"})
}

// pathID parses the {id} path variable, answering 400 itself on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id64, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id64 == 0 {
		utils.WriteError(w, http.StatusBadRequest, "ID no válido")
		return 0, false
	}
	return uint(id64), true
}

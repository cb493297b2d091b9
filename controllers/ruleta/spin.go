package ruleta

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/Domotic593/Ruleta-Completa/models"
	"github.com/Domotic593/Ruleta-Completa/utils"
	"github.com/Domotic593/Ruleta-Completa/wheel"
)

// Controller serves the public wheel endpoints. A single mutex serializes
// spins so two concurrent spins cannot both drain the same stock unit.
type Controller struct {
	db     *gorm.DB
	engine *wheel.Engine
	spinMu sync.Mutex
}

func NewController(db *gorm.DB, engine *wheel.Engine) *Controller {
	return &Controller{db: db, engine: engine}
}

// SpinResult is the success body of POST /api/ruleta/girar.
type SpinResult struct {
	Resultado      models.Prize `json:"resultado"`
	PuntosActuales int          `json:"puntos_actuales"`
	UserID         string       `json:"user_id"`
}

type itemsResponse struct {
	Items []models.Prize `json:"items"`
}

// GET /api/ruleta/items
//
// The display surface degrades to an empty wheel instead of failing, so this
// always answers 200.
func (c *Controller) ItemsHandler(w http.ResponseWriter, r *http.Request) {
	var prizes []models.Prize
	if err := c.db.Where("activo = ?", true).Order("id ASC").Find(&prizes).Error; err != nil {
		log.Printf("[ruleta] items query failed: %v", err)
		utils.WriteJSON(w, http.StatusOK, itemsResponse{Items: []models.Prize{}})
		return
	}
	if prizes == nil {
		prizes = []models.Prize{}
	}
	utils.WriteJSON(w, http.StatusOK, itemsResponse{Items: prizes})
}

type girarRequest struct {
	UserID string `json:"user_id"`
}

// POST /api/ruleta/girar
func (c *Controller) GirarHandler(w http.ResponseWriter, r *http.Request) {
	var req girarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}
	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}

	result, err := c.Spin(userID)
	if err != nil {
		if errors.Is(err, wheel.ErrNoPrizes) {
			utils.WriteError(w, http.StatusBadRequest, "No hay productos disponibles")
			return
		}
		log.Printf("[ruleta] spin failed for user %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// Spin runs one full redemption: it draws a winner over the active catalog
// and applies every side effect in one transaction. On storage failure all
// pending mutations roll back. One deliberate exception: when no prizes are
// active, the lazily-created user row is still committed before ErrNoPrizes
// is reported.
func (c *Controller) Spin(userID string) (*SpinResult, error) {
	c.spinMu.Lock()
	defer c.spinMu.Unlock()

	var result SpinResult
	var noPrizes bool

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			user = models.User{ID: userID, Puntos: models.DefaultStartingPoints, Nivel: 1}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		var prizes []models.Prize
		if err := tx.Where("activo = ?", true).Order("id ASC").Find(&prizes).Error; err != nil {
			return err
		}
		if len(prizes) == 0 {
			// commit keeps the user row
			noPrizes = true
			return nil
		}

		winner, err := c.engine.SelectWinner(prizes)
		if err != nil {
			if errors.Is(err, wheel.ErrNoPrizes) {
				noPrizes = true
				return nil
			}
			return err
		}

		// Finite stock drains by one; hitting zero retires the prize from
		// the wheel. Non-positive stock means unlimited and stays untouched.
		if winner.Stock > 0 {
			winner.Stock--
			if winner.Stock == 0 {
				winner.Activo = false
			}
			if err := tx.Model(&models.Prize{}).Where("id = ?", winner.ID).
				Updates(map[string]interface{}{"stock": winner.Stock, "activo": winner.Activo}).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		user.Puntos += winner.Puntos
		user.GirosRealizados++
		user.UltimoGiro = &now
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"puntos":           user.Puntos,
				"giros_realizados": user.GirosRealizados,
				"ultimo_giro":      now,
			}).Error; err != nil {
			return err
		}

		award := models.Award{UsuarioID: user.ID, ProductoID: winner.ID, FechaObtencion: now}
		if err := tx.Create(&award).Error; err != nil {
			return err
		}

		result = SpinResult{Resultado: winner, PuntosActuales: user.Puntos, UserID: user.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if noPrizes {
		return nil, wheel.ErrNoPrizes
	}
	return &result, nil
}

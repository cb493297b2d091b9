package ruleta

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Domotic593/Ruleta-Completa/models"
	"github.com/Domotic593/Ruleta-Completa/wheel"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Prize{}, &models.User{}, &models.Award{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fixedSource makes rand.Float64 return roughly v/2^63, so a draw can be
// pinned for a test.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }

func (s fixedSource) Seed(int64) {}

// sourceFor returns a rand.Source whose first Float64 is ~r.
func sourceFor(r float64) rand.Source {
	return fixedSource(r * float64(1<<63))
}

func TestSpin_ReferenceExample(t *testing.T) {
	// Two equal weights: cumulative for the first prize is 0.5, so a draw
	// of 0.3 must win prize 1, drain its stock and deactivate it.
	db := testDB(t)
	prizes := []models.Prize{
		{Nombre: "Premio Mayor", Tipo: models.TipoPrize, Puntos: 50, Stock: 1, Probabilidad: 1, Activo: true, Color: "#FFD700"},
		{Nombre: "Pierdes Turno", Tipo: models.TipoPenalty, Puntos: -10, Stock: 999, Probabilidad: 1, Activo: true, Color: "#F44336"},
	}
	if err := db.Create(&prizes).Error; err != nil {
		t.Fatalf("seed prizes: %v", err)
	}

	c := NewController(db, wheel.New(sourceFor(0.3)))
	result, err := c.Spin("user_001")
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if result.Resultado.ID != prizes[0].ID {
		t.Fatalf("draw 0.3 should win the first prize, got %d", result.Resultado.ID)
	}
	if result.PuntosActuales != 150 {
		t.Fatalf("points = %d, want 150", result.PuntosActuales)
	}
	if result.UserID != "user_001" {
		t.Fatalf("user id = %q", result.UserID)
	}

	var won models.Prize
	if err := db.First(&won, prizes[0].ID).Error; err != nil {
		t.Fatalf("reload prize: %v", err)
	}
	if won.Stock != 0 || won.Activo {
		t.Fatalf("stock=%d activo=%v, want 0/false", won.Stock, won.Activo)
	}

	// The retired prize is gone from the active listing
	var active []models.Prize
	if err := db.Where("activo = ?", true).Find(&active).Error; err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].ID != prizes[1].ID {
		t.Fatalf("active listing should hold only prize 2, got %+v", active)
	}

	var awards int64
	db.Model(&models.Award{}).Count(&awards)
	if awards != 1 {
		t.Fatalf("award count = %d, want 1", awards)
	}
}

func TestSpin_NoPrizesStillPersistsUser(t *testing.T) {
	db := testDB(t)
	c := NewController(db, wheel.NewDefault())

	_, err := c.Spin("lazy_user")
	if !errors.Is(err, wheel.ErrNoPrizes) {
		t.Fatalf("expected ErrNoPrizes, got %v", err)
	}

	// The lazily-created user survives the failed spin
	var user models.User
	if err := db.First(&user, "id = ?", "lazy_user").Error; err != nil {
		t.Fatalf("user should exist: %v", err)
	}
	if user.Puntos != models.DefaultStartingPoints || user.GirosRealizados != 0 {
		t.Fatalf("user = %+v, want fresh user with %d points", user, models.DefaultStartingPoints)
	}
	if user.UltimoGiro != nil {
		t.Fatal("ultimo_giro should stay unset")
	}

	var awards int64
	db.Model(&models.Award{}).Count(&awards)
	if awards != 0 {
		t.Fatalf("no award should be written, got %d", awards)
	}
}

func TestSpin_PointsAccumulateIncludingPenalties(t *testing.T) {
	db := testDB(t)
	prize := models.Prize{Nombre: "Multa", Tipo: models.TipoPenalty, Puntos: -40, Stock: -1, Probabilidad: 2, Activo: true}
	if err := db.Create(&prize).Error; err != nil {
		t.Fatalf("seed prize: %v", err)
	}

	c := NewController(db, wheel.NewDefault())
	var last *SpinResult
	for i := 0; i < 4; i++ {
		r, err := c.Spin("user_002")
		if err != nil {
			t.Fatalf("spin %d: %v", i+1, err)
		}
		last = r
	}

	// 100 + 4 * (-40): the balance has no floor
	if last.PuntosActuales != -60 {
		t.Fatalf("points = %d, want -60", last.PuntosActuales)
	}

	var user models.User
	if err := db.First(&user, "id = ?", "user_002").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.Puntos != -60 || user.GirosRealizados != 4 {
		t.Fatalf("user = %+v, want -60 points over 4 spins", user)
	}
	if user.UltimoGiro == nil {
		t.Fatal("ultimo_giro should be set")
	}

	// Unlimited sentinel stock is untouched and the prize stays active
	var reloaded models.Prize
	if err := db.First(&reloaded, prize.ID).Error; err != nil {
		t.Fatalf("reload prize: %v", err)
	}
	if reloaded.Stock != -1 || !reloaded.Activo {
		t.Fatalf("prize = %+v, want untouched unlimited stock", reloaded)
	}

	var awards int64
	db.Model(&models.Award{}).Where("usuario_id = ?", "user_002").Count(&awards)
	if awards != 4 {
		t.Fatalf("award count = %d, want 4", awards)
	}
}

func TestGirarHandler_Success(t *testing.T) {
	db := testDB(t)
	prize := models.Prize{Nombre: "Giro Extra", Tipo: models.TipoBonus, Puntos: 0, Stock: 5, Probabilidad: 1, Activo: true}
	if err := db.Create(&prize).Error; err != nil {
		t.Fatalf("seed prize: %v", err)
	}
	c := NewController(db, wheel.NewDefault())

	body := bytes.NewBufferString(`{"user_id": "web_user"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/ruleta/girar", body)
	rec := httptest.NewRecorder()
	c.GirarHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result SpinResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.UserID != "web_user" {
		t.Fatalf("user_id = %q", result.UserID)
	}
	if result.Resultado.Nombre != "Giro Extra" {
		t.Fatalf("resultado = %+v", result.Resultado)
	}
	if result.PuntosActuales != 100 {
		t.Fatalf("puntos_actuales = %d, want 100", result.PuntosActuales)
	}
}

func TestGirarHandler_DefaultsToAnonymous(t *testing.T) {
	db := testDB(t)
	prize := models.Prize{Nombre: "Premio", Tipo: models.TipoPrize, Puntos: 10, Stock: -1, Probabilidad: 1, Activo: true}
	if err := db.Create(&prize).Error; err != nil {
		t.Fatalf("seed prize: %v", err)
	}
	c := NewController(db, wheel.NewDefault())

	req := httptest.NewRequest(http.MethodPost, "/api/ruleta/girar", nil)
	rec := httptest.NewRecorder()
	c.GirarHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result SpinResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.UserID != "anonymous" {
		t.Fatalf("user_id = %q, want anonymous", result.UserID)
	}
}

func TestGirarHandler_NoPrizes(t *testing.T) {
	db := testDB(t)
	c := NewController(db, wheel.NewDefault())

	body := bytes.NewBufferString(`{"user_id": "u"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/ruleta/girar", body)
	rec := httptest.NewRecorder()
	c.GirarHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "No hay productos disponibles" {
		t.Fatalf("error = %q", resp["error"])
	}
}

func TestItemsHandler_ActiveOnly(t *testing.T) {
	db := testDB(t)
	prizes := []models.Prize{
		{Nombre: "Visible", Tipo: models.TipoPrize, Puntos: 5, Stock: 1, Probabilidad: 1, Activo: true},
		{Nombre: "Oculto", Tipo: models.TipoPrize, Puntos: 5, Stock: 0, Probabilidad: 1, Activo: false},
	}
	if err := db.Create(&prizes).Error; err != nil {
		t.Fatalf("seed prizes: %v", err)
	}
	c := NewController(db, wheel.NewDefault())

	req := httptest.NewRequest(http.MethodGet, "/api/ruleta/items", nil)
	rec := httptest.NewRecorder()
	c.ItemsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Items []models.Prize `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Nombre != "Visible" {
		t.Fatalf("items = %+v, want only the active prize", resp.Items)
	}
}

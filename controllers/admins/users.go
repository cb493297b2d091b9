package admins

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Domotic593/Ruleta-Completa/models"
	"github.com/Domotic593/Ruleta-Completa/utils"
)

// GET /api/admin/usuarios
//
// Leaderboard listing: users ordered by points. ?limit= caps the page size
// (default 50, max 500).
func (c *Controller) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > 500 {
		limit = 500
	}

	var users []models.User
	if err := c.db.Order("puntos DESC, giros_realizados DESC").Limit(limit).Find(&users).Error; err != nil {
		log.Printf("[admin] list users failed: %v", err)
		utils.WriteJSON(w, http.StatusOK, []models.User{})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	utils.WriteJSON(w, http.StatusOK, users)
}
